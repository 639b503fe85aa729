package tick

import "testing"

// scripted counter that advances a fixed step per reading
type steppingSource struct {
	now   uint32
	step  uint32
	reads int
}

func (s *steppingSource) Microseconds() uint32 {
	s.reads++
	v := s.now
	s.now += s.step
	return v
}

func TestElapsedSimple(t *testing.T) {
	s := &steppingSource{now: 1000, step: 0}
	if e := Elapsed(s, 250); e != 750 {
		t.Errorf("elapsed computed %d, expected 750", e)
	}
}

func TestElapsedAcrossWrap(t *testing.T) {
	s := &steppingSource{now: 0x10, step: 0}
	if e := Elapsed(s, 0xFFFFFFF0); e != 0x20 {
		t.Errorf("wrap-safe elapsed computed %#x, expected 0x20", e)
	}
}

func TestBusyWaitTerminates(t *testing.T) {
	s := &steppingSource{now: 0, step: 10}
	BusyWait(s, 100)
	// one read for the start mark, then readings 10, 20 .. 100; the
	// loop exits the moment elapsed reaches the requested duration
	if s.reads != 11 {
		t.Errorf("expected 11 counter reads for a 100 musec wait stepping 10, got %d", s.reads)
	}
}

func TestBusyWaitAcrossWrap(t *testing.T) {
	s := &steppingSource{now: 0xFFFFFFC0, step: 16}
	BusyWait(s, 128)
	if s.reads != 9 {
		t.Errorf("expected 9 counter reads for a wait spanning the wrap, got %d", s.reads)
	}
}
