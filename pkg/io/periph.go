package io

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/pca9685"
	"periph.io/x/host/v3"
)

// PeriphPCA9685 is the same external board driven through periph.io,
// which works on any Linux host with an i2c bus, not just the Pi.
type PeriphPCA9685 struct {
	bus     i2c.BusCloser
	dev     *pca9685.Dev
	channel int
}

// OpenPeriphPCA9685 configures a PCA9685 at the usual 0x40 address on the
// named bus ("" picks the first available) for 50 Hz servo frames.
func OpenPeriphPCA9685(busName string, channel int) (*PeriphPCA9685, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", busName, err)
	}
	dev, err := pca9685.NewI2C(bus, 0x40)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to create PCA9685 device: %w", err)
	}
	if err := dev.SetPwmFreq(50 * physic.Hertz); err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to set PWM frequency: %w", err)
	}
	return &PeriphPCA9685{bus: bus, dev: dev, channel: channel}, nil
}

func (p *PeriphPCA9685) Write(duty uint32) error {
	return p.dev.SetPwm(p.channel, 0, gpio.Duty(FrameTicks(duty, 4096)))
}

func (p *PeriphPCA9685) Close() {
	_ = p.dev.SetPwm(p.channel, 0, 0)
	_ = p.bus.Close()
}
