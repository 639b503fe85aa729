package tegra

// UARTInstance names one physical transceiver: where its register block
// sits and which clock gate feeds it.  Instances are process-wide
// constants; they hold no mutable state themselves.  A descriptor is a
// capability to address the hardware, not ownership of it -- exactly one
// logical owner may drive a given instance at a time.
type UARTInstance struct {
	Base  uintptr
	Clock *Clock
}

var UARTA = &UARTInstance{Base: UARTABase, Clock: &ClockUARTA}
var UARTB = &UARTInstance{Base: UARTBBase, Clock: &ClockUARTB}
var UARTC = &UARTInstance{Base: UARTCBase, Clock: &ClockUARTC}
var UARTD = &UARTInstance{Base: UARTDBase, Clock: &ClockUARTD}
var UARTE = &UARTInstance{Base: UARTEBase, Clock: &ClockUARTAPE}
