package io

import (
	"fmt"

	"github.com/hjkoskel/govattu"
	"github.com/warthog618/go-gpiocdev/device/rpi"
)

const (
	// DefaultPin is the on-board hardware PWM0 output (BCM numbering).
	DefaultPin = rpi.GPIO18

	// One 20 ms frame is 2000 ticks of the 19.2 MHz base clock divided
	// by 192, i.e. a 100 kHz tick. A 1 ms servo pulse is then 50 ticks
	// and a 2 ms pulse 250.
	FrameRange = 2000
	ClockDiv   = 192
)

// HardwarePWM drives a servo from the Pi's PWM0 peripheral in mark-space
// mode. The peripheral is claimed once at startup and held until Close.
type HardwarePWM struct {
	hw  govattu.Vattu
	pin uint8
}

// OpenHardwarePWM maps the GPIO registers and configures the pin for
// mark-space PWM at 50 Hz. Mode is set before range and clock; the
// peripheral rejects the reverse order.
func OpenHardwarePWM(pin int) (*HardwarePWM, error) {
	hw, err := govattu.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to map gpio registers: %w", err)
	}
	hw.PinMode(uint8(pin), govattu.ALT5)
	hw.PwmSetMode(true, true, false, false)
	hw.Pwm0SetRange(FrameRange)
	hw.PwmSetClock(ClockDiv)
	return &HardwarePWM{hw: hw, pin: uint8(pin)}, nil
}

// Write latches the pulse width in frame ticks; it takes effect on the
// next frame boundary. This is a register write and cannot fail.
func (p *HardwarePWM) Write(duty uint32) error {
	p.hw.Pwm0Set(duty)
	return nil
}

func (p *HardwarePWM) Close() {
	p.hw.Pwm0Set(0)
	p.hw.Close()
}
