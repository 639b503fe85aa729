package tick

// Source is a free-running microsecond counter.  It wraps at 2^32
// microseconds (roughly 71 minutes), so elapsed time must always be
// computed with Elapsed, never by comparing raw readings.
type Source interface {
	Microseconds() uint32
}

// Elapsed returns the microseconds since a previous reading.  Unsigned
// subtraction keeps the answer correct across one counter wrap.
func Elapsed(src Source, since uint32) uint32 {
	return src.Microseconds() - since
}

// BusyWait spins until at least the given number of microseconds has
// passed.  There is no yield point; this is the only blocking primitive
// available before a scheduler exists.
func BusyWait(src Source, micros uint32) {
	start := src.Microseconds()
	for Elapsed(src, start) < micros {
	}
}
