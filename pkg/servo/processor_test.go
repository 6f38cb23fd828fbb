package servo

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeSink struct {
	writes []uint32
	err    error
}

func (f *fakeSink) Write(duty uint32) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, duty)
	return nil
}

type fakeRecorder struct {
	angles []int
	err    error
	// afterWrite records how many sink writes had happened when each
	// append arrived, so ordering is checkable.
	afterWrite []int
	sink       *fakeSink
}

func (f *fakeRecorder) Append(angle int) error {
	if f.sink != nil {
		f.afterWrite = append(f.afterWrite, len(f.sink.writes))
	}
	if f.err != nil {
		return f.err
	}
	f.angles = append(f.angles, angle)
	return nil
}

func TestApply_BoundaryDuties(t *testing.T) {
	cases := []struct {
		angle      int
		calibrated int
		duty       uint32
	}{
		{0, 0, 50},
		{45, 30, 83},
		{60, 46, 101},
		{90, 80, 138},
		{180, 168, 236},
	}
	for _, tc := range cases {
		sink := &fakeSink{}
		rec := &fakeRecorder{}
		var out bytes.Buffer
		p := NewProcessor(DefaultTable, sink, rec, &out)

		p.Apply(tc.angle)

		if len(sink.writes) != 1 || sink.writes[0] != tc.duty {
			t.Fatalf("angle %d: writes %v, want [%d]", tc.angle, sink.writes, tc.duty)
		}
		if len(rec.angles) != 1 || rec.angles[0] != tc.angle {
			t.Fatalf("angle %d: recorded %v", tc.angle, rec.angles)
		}
	}
}

func TestApply_ConfirmationLine(t *testing.T) {
	sink := &fakeSink{}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, nil, &out)

	p.Apply(0)

	want := "Servo angle set to 0 degrees (Calibrated: 0, PWM: 50)\n"
	if out.String() != want {
		t.Fatalf("output %q, want %q", out.String(), want)
	}
}

func TestApply_RejectsOutOfRange(t *testing.T) {
	for _, angle := range []int{-1, 181, 200, -90} {
		sink := &fakeSink{}
		rec := &fakeRecorder{}
		var out bytes.Buffer
		p := NewProcessor(DefaultTable, sink, rec, &out)

		p.Apply(angle)

		if len(sink.writes) != 0 {
			t.Fatalf("angle %d reached the sink: %v", angle, sink.writes)
		}
		if len(rec.angles) != 0 {
			t.Fatalf("angle %d reached the recorder: %v", angle, rec.angles)
		}
		if !strings.Contains(out.String(), "Invalid angle!") {
			t.Fatalf("angle %d: output %q", angle, out.String())
		}
	}
}

func TestApply_DutyRange(t *testing.T) {
	sink := &fakeSink{}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, nil, &out)

	for angle := 0; angle <= 180; angle++ {
		p.Apply(angle)
	}
	for i, duty := range sink.writes {
		if duty < 50 || duty > 236 {
			t.Fatalf("write %d: duty %d outside [50, 236]", i, duty)
		}
	}
}

func TestApply_ActuatorBeforeRecord(t *testing.T) {
	sink := &fakeSink{}
	rec := &fakeRecorder{sink: sink}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, rec, &out)

	p.Apply(90)

	if len(rec.afterWrite) != 1 || rec.afterWrite[0] != 1 {
		t.Fatalf("append saw %v sink writes, want [1]", rec.afterWrite)
	}
}

func TestApply_RecorderFailureKeepsActuator(t *testing.T) {
	sink := &fakeSink{}
	rec := &fakeRecorder{err: errors.New("disk full"), sink: sink}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, rec, &out)

	p.Apply(90)
	p.Apply(45)

	// The servo still moved both times and the confirmations printed.
	if len(sink.writes) != 2 {
		t.Fatalf("writes %v, want two", sink.writes)
	}
	if n := strings.Count(out.String(), "Servo angle set to"); n != 2 {
		t.Fatalf("got %d confirmations, want 2", n)
	}
}

func TestApply_Idempotent(t *testing.T) {
	sink := &fakeSink{}
	rec := &fakeRecorder{}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, rec, &out)

	p.Apply(90)
	p.Apply(90)

	if len(sink.writes) != 2 || sink.writes[0] != sink.writes[1] {
		t.Fatalf("writes %v, want two equal duties", sink.writes)
	}
	if len(rec.angles) != 2 {
		t.Fatalf("recorded %v, want one row per issuance", rec.angles)
	}
	half := len(out.String()) / 2
	if out.String()[:half] != out.String()[half:] {
		t.Fatalf("confirmations differ: %q", out.String())
	}
}

func TestApply_NilRecorder(t *testing.T) {
	sink := &fakeSink{}
	var out bytes.Buffer
	p := NewProcessor(DefaultTable, sink, nil, &out)

	p.Apply(90)

	if len(sink.writes) != 1 {
		t.Fatalf("writes %v, want one", sink.writes)
	}
}
