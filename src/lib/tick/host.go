package tick

import "time"

type hostSource struct {
	start time.Time
}

// Host returns a Source driven by the Go monotonic clock, for tools and
// tests running under an operating system.
func Host() Source {
	return &hostSource{start: time.Now()}
}

func (h *hostSource) Microseconds() uint32 {
	return uint32(time.Since(h.start).Microseconds())
}
