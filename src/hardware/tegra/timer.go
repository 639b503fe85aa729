package tegra

// Fixed time base.  TIMERUS free-runs at 1MHz regardless of the core
// clock and wraps at 2^32 microseconds, about 71 minutes; elapsed-time
// math on it has to use unsigned subtraction.

const TimerBase = uintptr(0x60005000)

const (
	TimerUSCounterReg = 0x10 //current microseconds, readonly
	TimerUSConfigReg  = 0x14 //dividend/divisor pair deriving the 1MHz tick
)
