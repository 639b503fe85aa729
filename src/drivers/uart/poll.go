package uart

import (
	"composure/src/hardware/tegra"
	"composure/src/lib/tick"
)

// pollSet spins until every bit of mask reads back set in the given
// register.  With a zero timeout the loop is unbounded; otherwise it
// gives up with UartTimeout once the configured budget is spent.
func (u *Uart) pollSet(reg uint32, mask uint32) UartError {
	if u.conf.TimeoutMicros == 0 {
		for u.dev.Read32(reg)&mask != mask {
		}
		return UartOk
	}
	start := u.src.Microseconds()
	for u.dev.Read32(reg)&mask != mask {
		if tick.Elapsed(u.src, start) > u.conf.TimeoutMicros {
			return UartTimeout
		}
	}
	return UartOk
}

// waitTxIdle blocks until the transmit shift register has drained, i.e.
// nothing at all is being clocked out.
func (u *Uart) waitTxIdle() UartError {
	return u.pollSet(tegra.LineStatusReg, tegra.TransmitShiftEmpty)
}

// waitTransmit blocks until the holding register can take another byte.
func (u *Uart) waitTransmit() UartError {
	return u.pollSet(tegra.LineStatusReg, tegra.TransmitHoldingEmpty)
}

// waitReceive blocks until at least one received byte is waiting.
func (u *Uart) waitReceive() UartError {
	return u.pollSet(tegra.LineStatusReg, tegra.DataReady)
}

// waitStatus blocks until the requested vendor status idle bits hold
// simultaneously.
func (u *Uart) waitStatus(want Status) UartError {
	return u.pollSet(tegra.VendorStatusReg, uint32(want&(TXIdle|RXIdle)))
}

// WaitStatus is the composable synchronization primitive: it blocks
// until the requested combination of TXIdle and RXIdle holds, without
// transferring any data.
func (u *Uart) WaitStatus(want Status) UartError {
	if u.state != stateReady {
		return UartNotReady
	}
	return u.waitStatus(want)
}
