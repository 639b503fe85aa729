// +build tegra

package tegra

import (
	"unsafe"

	"github.com/tinygo-org/tinygo/src/runtime/volatile"
)

// MMIODevice is the real-hardware Device: volatile 32 bit loads and
// stores relative to a physical base address.
type MMIODevice uintptr

func (m MMIODevice) Read32(offset uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(m) + uintptr(offset))).Get()
}

func (m MMIODevice) Write32(offset uint32, value uint32) {
	(*volatile.Register32)(unsafe.Pointer(uintptr(m) + uintptr(offset))).Set(value)
}

// MMIO addresses this instance's register block.
func (i *UARTInstance) MMIO() Device {
	return MMIODevice(i.Base)
}

// CAR addresses the clock and reset controller.
func CAR() Device {
	return MMIODevice(CARBase)
}

// Pinmux addresses the pin multiplexer block.
func Pinmux() Device {
	return MMIODevice(PinmuxBase)
}
