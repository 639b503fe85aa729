package uart

import (
	"io/ioutil"
	"os"
	"testing"

	"composure/src/hardware/tegra"
	"composure/src/lib/trust"
)

func TestMain(m *testing.M) {
	trust.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

// fakeDevice simulates one transceiver register block well enough to
// exercise the driver's protocol: the modal divisor latch, the status
// bits the poll loops watch, destructive data reads, and an optional
// full duplex loopback wire.
type fakeDevice struct {
	lcr, ier, fcr, mcr uint32
	divLow, divHigh    uint32

	rxQueue []byte
	txLog   []byte

	scratchReads int
	dataReads    int
	lsrReads     int

	thrHoldoff  int  //report the holding register full for this many polls
	tmtyNever   bool //shift register never drains (dead hardware)
	fifoCleared bool //saw a write with the self-clearing clear bits
	loopback    bool //transmitted bytes arrive on the receive side
}

func (f *fakeDevice) Read32(offset uint32) uint32 {
	switch offset {
	case tegra.LineStatusReg:
		f.lsrReads++
		var st uint32
		if !f.tmtyNever {
			st |= tegra.TransmitShiftEmpty
		}
		if f.thrHoldoff > 0 {
			f.thrHoldoff--
		} else {
			st |= tegra.TransmitHoldingEmpty
		}
		if len(f.rxQueue) > 0 {
			st |= tegra.DataReady
		}
		return st
	case tegra.VendorStatusReg:
		var st uint32
		if !f.tmtyNever {
			st |= tegra.TXIdle
		}
		if len(f.rxQueue) == 0 {
			st |= tegra.RXIdle
		}
		return st
	case tegra.DataReg:
		if f.lcr&tegra.DivisorLatch != 0 {
			return f.divLow
		}
		f.dataReads++
		if len(f.rxQueue) == 0 {
			return 0
		}
		b := f.rxQueue[0]
		f.rxQueue = f.rxQueue[1:]
		return uint32(b)
	case tegra.InterruptEnableReg:
		if f.lcr&tegra.DivisorLatch != 0 {
			return f.divHigh
		}
		return f.ier
	case tegra.FIFOControlReg:
		return f.fcr
	case tegra.LineControlReg:
		return f.lcr
	case tegra.ScratchReg:
		f.scratchReads++
		return 0
	}
	return 0
}

func (f *fakeDevice) Write32(offset uint32, value uint32) {
	switch offset {
	case tegra.DataReg:
		if f.lcr&tegra.DivisorLatch != 0 {
			f.divLow = value
			return
		}
		f.txLog = append(f.txLog, byte(value))
		if f.loopback {
			f.rxQueue = append(f.rxQueue, byte(value))
		}
	case tegra.InterruptEnableReg:
		if f.lcr&tegra.DivisorLatch != 0 {
			f.divHigh = value
			return
		}
		f.ier = value
	case tegra.FIFOControlReg:
		if value&(tegra.RXClear|tegra.TXClear) != 0 {
			f.fifoCleared = true
		}
		f.fcr = value &^ uint32(tegra.RXClear|tegra.TXClear) //self-clearing
	case tegra.LineControlReg:
		f.lcr = value
	case tegra.ModemControlReg:
		f.mcr = value
	}
}

type fakeGate struct {
	enables int
}

func (g *fakeGate) Enable() {
	g.enables++
}

// fakeClock advances a few microseconds per reading so busy waits and
// timeout budgets both make progress.
type fakeClock struct {
	now uint32
}

func (c *fakeClock) Microseconds() uint32 {
	c.now += 5
	return c.now
}

func newTestUart(conf Config) (*Uart, *fakeDevice, *fakeGate) {
	f := &fakeDevice{}
	g := &fakeGate{}
	return NewUart(f, g, &fakeClock{}, conf), f, g
}

func newReadyUart(conf Config) (*Uart, *fakeDevice, *fakeGate) {
	u, f, g := newTestUart(conf)
	if err := u.Init(115200); err != UartOk {
		panic("fake hardware failed to initialize: " + err.String())
	}
	return u, f, g
}
