package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jason89923/servoctl/pkg/servo"
)

// Controller runs the operator loop: prompt, read one integer angle per
// line, hand it to the processor, then pause long enough for the servo to
// finish slewing before the next command.
type Controller struct {
	proc  *servo.Processor
	in    io.Reader
	out   io.Writer
	delay time.Duration
}

func New(proc *servo.Processor, in io.Reader, out io.Writer, delay time.Duration) *Controller {
	return &Controller{
		proc:  proc,
		in:    in,
		out:   out,
		delay: delay,
	}
}

// Run loops until the input ends or the context is cancelled. All effects
// of one command (actuator write, confirmation, record append, pause)
// finish before the next line is read.
func (c *Controller) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "SG90 Servo Motor Angle Control with Hardware PWM (Non-linear Calibration)")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(c.out, "Enter the servo angle (0-180): ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return nil
			}
			angle, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				fmt.Fprintln(c.out, "Invalid angle! Please enter a value between 0 and 180.")
				continue
			}
			c.proc.Apply(angle)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.delay):
			}
		}
	}
}
