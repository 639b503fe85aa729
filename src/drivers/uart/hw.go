// +build tegra

package uart

import (
	"composure/src/hardware/tegra"
	"composure/src/lib/tick"
)

// NewInstance wires a driver to one of the well known hardware
// instances: its memory mapped register block, its clock gate on the
// CAR, and the TIMERUS time base.  Pad configuration
// (tegra.ConfigureUARTPads) is the caller's job, before Init.
func NewInstance(inst *tegra.UARTInstance, conf Config) *Uart {
	gate := tegra.GatedClock{Dev: tegra.CAR(), Clock: inst.Clock}
	return NewUart(inst.MMIO(), gate, tick.Hardware(), conf)
}
