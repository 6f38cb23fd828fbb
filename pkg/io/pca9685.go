package io

import (
	"fmt"
	"time"

	"gobot.io/x/gobot/drivers/i2c"
	"gobot.io/x/gobot/platforms/raspi"
)

// PCA9685 drives a servo through an external PCA9685 board over i2c
// instead of the on-board PWM peripheral. Useful when PWM0 is taken by
// audio or when the servo hangs off a breakout hat.
type PCA9685 struct {
	driver  *i2c.PCA9685Driver
	channel int
}

// OpenPCA9685 starts the driver on the Pi's default i2c bus and sets the
// board to the standard 50 Hz servo frame.
func OpenPCA9685(channel int) (*PCA9685, error) {
	r := raspi.NewAdaptor()
	driver := i2c.NewPCA9685Driver(r)
	if err := driver.Start(); err != nil {
		return nil, fmt.Errorf("failed to start PCA9685 driver: %w", err)
	}
	if err := driver.SetPWMFreq(50); err != nil {
		return nil, fmt.Errorf("failed to set PWM frequency: %w", err)
	}
	return &PCA9685{driver: driver, channel: channel}, nil
}

// Write rescales the duty from the on-board 2000-tick frame to the
// PCA9685's 4096 ticks per 20 ms and latches it on the channel.
func (p *PCA9685) Write(duty uint32) error {
	return p.driver.SetPWM(p.channel, 0, FrameTicks(duty, 4096))
}

func (p *PCA9685) Close() {
	_ = p.driver.SetPWM(p.channel, 0, 0)
	_ = p.driver.Halt()
	time.Sleep(100 * time.Millisecond) // Give it time to halt
}
