package tegra

// Clock and reset controller (CAR).  Only the slice of it that feeds
// the UART blocks is declared here: the reset-devices and clock-out
// enable banks plus the per-UART clock source registers.

const CARBase = uintptr(0x60006000)

const (
	ResetDevicesLReg      = 0x004
	ResetDevicesHReg      = 0x008
	ResetDevicesUReg      = 0x00C
	ClockOutEnableLReg    = 0x010
	ClockOutEnableHReg    = 0x014
	ClockOutEnableUReg    = 0x018
	ClockSourceUARTAReg   = 0x178
	ClockSourceUARTBReg   = 0x17C
	ClockSourceUARTCReg   = 0x1A0
	ClockSourceUARTDReg   = 0x1C0
	ClockOutEnableYReg    = 0x298
	ResetDevicesYReg      = 0x2A4
	ClockSourceUARTAPEReg = 0x710
)

// Clock identifies one gated device clock: which reset and enable banks
// carry its bit, the bit position inside them, and the source register
// (0 when the device has no dedicated source mux).  SourceValue selects
// PLLP_OUT0 when zero; Divisor is the N+1 style source divider.
type Clock struct {
	Reset       uint32
	Enable      uint32
	Source      uint32
	Index       uint8
	SourceValue uint32
	Divisor     uint32
}

var ClockUARTA = Clock{Reset: ResetDevicesLReg, Enable: ClockOutEnableLReg, Source: ClockSourceUARTAReg, Index: 6}
var ClockUARTB = Clock{Reset: ResetDevicesLReg, Enable: ClockOutEnableLReg, Source: ClockSourceUARTBReg, Index: 7}
var ClockUARTC = Clock{Reset: ResetDevicesHReg, Enable: ClockOutEnableHReg, Source: ClockSourceUARTCReg, Index: 23}
var ClockUARTD = Clock{Reset: ResetDevicesUReg, Enable: ClockOutEnableUReg, Source: ClockSourceUARTDReg, Index: 1}
var ClockUARTAPE = Clock{Reset: ResetDevicesYReg, Enable: ClockOutEnableYReg, Source: ClockSourceUARTAPEReg, Index: 6}

// EnableOn ungates the clock on the given CAR block.  The device is held
// in reset while the source mux changes; register access on the device
// side is undefined until this returns.
func (c *Clock) EnableOn(dev Device) {
	mask := uint32(1) << c.Index

	dev.Write32(c.Reset, dev.Read32(c.Reset)|mask)
	dev.Write32(c.Enable, dev.Read32(c.Enable)&^mask)
	if c.Source != 0 {
		dev.Write32(c.Source, c.SourceValue|c.Divisor)
	}
	dev.Write32(c.Enable, dev.Read32(c.Enable)|mask)
	dev.Write32(c.Reset, dev.Read32(c.Reset)&^mask)
}

// DisableOn gates the clock again and puts the device back into reset.
func (c *Clock) DisableOn(dev Device) {
	mask := uint32(1) << c.Index

	dev.Write32(c.Reset, dev.Read32(c.Reset)|mask)
	dev.Write32(c.Enable, dev.Read32(c.Enable)&^mask)
}

// GatedClock binds a Clock to the CAR block it lives on so that a driver
// can hold a single enable handle without knowing about the controller.
type GatedClock struct {
	Dev   Device
	Clock *Clock
}

func (g GatedClock) Enable() {
	g.Clock.EnableOn(g.Dev)
}
