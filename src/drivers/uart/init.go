package uart

import (
	"composure/src/hardware/tegra"
	"composure/src/lib/trust"
)

// sourceClockHz is PLLP_OUT0, the reference feeding every UART source
// mux on this chip family.
const sourceClockHz = 408_000_000

// divisor computes the baud rate divisor.  The 8*baud numerator bias
// makes the integer division round to nearest; hardware timing depends
// on this exact formula.
func divisor(baud uint32) uint32 {
	return (8*baud + sourceClockHz) / (16 * baud)
}

// divisorLatch is the only path to the divisor bytes.  While it is open
// the first two registers of the block mean divisor low/high instead of
// the data holding and interrupt enable registers, and the transfer
// paths refuse to run.
type divisorLatch struct {
	u *Uart
}

func (u *Uart) openDivisorLatch() divisorLatch {
	u.dev.Write32(tegra.LineControlReg, tegra.DivisorLatch|tegra.WordLength8)
	u.latched = true
	return divisorLatch{u: u}
}

func (l divisorLatch) setDivisor(d uint32) {
	l.u.dev.Write32(tegra.DataReg, d&0xff)
	l.u.dev.Write32(tegra.InterruptEnableReg, (d>>8)&0xff)
}

func (l divisorLatch) close() {
	lcr := l.u.dev.Read32(tegra.LineControlReg)
	l.u.dev.Write32(tegra.LineControlReg, lcr&^uint32(tegra.DivisorLatch))
	l.u.latched = false
}

// Init brings the instance up at the given baud rate with 8N1 framing
// and the FIFO enabled.  It is safe to call again on a ready handle; the
// line configuration it leaves behind is the same both times.  On any
// timeout the handle drops back to uninitialized.
func (u *Uart) Init(baud uint32) UartError {
	if baud == 0 || baud > MaxBaudRate {
		return UartBadBaud
	}
	u.state = stateInitializing
	u.baud = baud

	u.gate.Enable()

	// nothing may still be clocking out when the line is reprogrammed
	if err := u.waitTxIdle(); err != UartOk {
		return u.initFailed(err)
	}

	u.dev.Write32(tegra.InterruptEnableReg, 0) //no interrupt sources
	u.dev.Write32(tegra.ModemControlReg, 0)    //no hardware flow control

	latch := u.openDivisorLatch()
	latch.setDivisor(divisor(baud))
	latch.close()

	// hardware wants a settle read plus three symbol periods before the
	// new divisor is trustworthy
	u.dev.Read32(tegra.ScratchReg)
	u.waitSymbols(3)

	u.dev.Write32(tegra.FIFOControlReg, tegra.FIFOEnable)
	u.dev.Read32(tegra.ScratchReg)
	u.waitCycles(3)

	if err := u.waitTxIdle(); err != UartOk {
		return u.initFailed(err)
	}
	fcr := u.dev.Read32(tegra.FIFOControlReg)
	u.dev.Write32(tegra.FIFOControlReg, fcr|tegra.RXClear|tegra.TXClear)
	u.waitCycles(32) //datasheet soak interval for the fifo reset

	if err := u.waitStatus(TXIdle | RXIdle); err != UartOk {
		return u.initFailed(err)
	}

	u.state = stateReady
	trust.Debugf("uart: ready at %d baud, divisor %d", baud, divisor(baud))
	return UartOk
}

func (u *Uart) initFailed(err UartError) UartError {
	u.state = stateUninitialized
	u.latched = false
	trust.Errorf("uart: init gave up waiting on hardware: %s", err)
	return err
}
