package uart

import "composure/src/lib/tick"

// symbolMicros is the time for amount whole symbol periods at the given
// baud rate, rounded up to whole microseconds.
func symbolMicros(baud uint32, amount uint32) uint32 {
	return (amount*1_000_000 + baud - 1) / baud
}

// cycleMicros is the time for amount ticks of the 16x oversampled bit
// clock, rounded up to whole microseconds.
func cycleMicros(baud uint32, amount uint32) uint32 {
	return (amount*1_000_000 + 16*baud - 1) / (16 * baud)
}

func (u *Uart) waitSymbols(amount uint32) {
	tick.BusyWait(u.src, symbolMicros(u.baud, amount))
}

func (u *Uart) waitCycles(amount uint32) {
	tick.BusyWait(u.src, cycleMicros(u.baud, amount))
}
