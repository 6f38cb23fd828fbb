package servo

import (
	"fmt"
	"io"
	"log"
)

const (
	// MinDuty and MaxDuty are the 1 ms and 2 ms pulse widths in ticks of
	// the 100 kHz / 2000-tick PWM frame.
	MinDuty = 50
	MaxDuty = 250
)

// Sink is the actuator side: it latches a pulse width in frame ticks,
// taking effect on the next 20 ms frame.
type Sink interface {
	Write(duty uint32) error
}

// Recorder appends a commanded angle to durable storage.
type Recorder interface {
	Append(angle int) error
}

// Processor validates a commanded angle, runs it through the calibration
// curve, scales the result to a pulse width and commits it to the sink,
// then records it. The recorder may be nil when logging is disabled.
type Processor struct {
	table Table
	sink  Sink
	rec   Recorder
	out   io.Writer
}

func NewProcessor(table Table, sink Sink, rec Recorder, out io.Writer) *Processor {
	return &Processor{
		table: table,
		sink:  sink,
		rec:   rec,
		out:   out,
	}
}

// Apply drives the servo to the given angle. Out-of-range angles are
// rejected with no side effects. The actuator write always precedes the
// record append; a failed append never rolls the servo back.
//
// The pulse-width scale divides by 180 even though the calibrated maximum
// is 168, so the top of travel lands at 236 ticks (1.86 ms) rather than
// the 250-tick ceiling. Changing the divisor would change every emitted
// duty value.
func (p *Processor) Apply(angle int) {
	if angle < 0 || angle > 180 {
		fmt.Fprintln(p.out, "Invalid angle! Please enter a value between 0 and 180.")
		return
	}

	calibrated := p.table.Interpolate(angle)
	duty := MinDuty + calibrated*(MaxDuty-MinDuty)/180

	if err := p.sink.Write(uint32(duty)); err != nil {
		log.Printf("pwm write failed: %v", err)
		return
	}
	fmt.Fprintf(p.out, "Servo angle set to %d degrees (Calibrated: %d, PWM: %d)\n", angle, calibrated, duty)

	if p.rec != nil {
		if err := p.rec.Append(angle); err != nil {
			log.Printf("failed recording angle: %v", err)
		}
	}
}
