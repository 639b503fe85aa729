// +build tegra

package tegra

import (
	"unsafe"

	"github.com/tinygo-org/tinygo/src/runtime/volatile"
)

// UARTRegisterMap mirrors one transceiver block for direct access from
// bare metal code.  Driver code should prefer the Device interface; this
// map exists for early bring-up and debugger poking.
type UARTRegisterMap struct {
	Data            volatile.Register32 //0x00, divisor low under latch
	InterruptEnable volatile.Register32 //0x04, divisor high under latch
	FIFOControl     volatile.Register32 //0x08, interrupt identification on read
	LineControl     volatile.Register32 //0x0C
	ModemControl    volatile.Register32 //0x10
	LineStatus      volatile.Register32 //0x14, readonly
	ModemStatus     volatile.Register32 //0x18, readonly
	Scratch         volatile.Register32 //0x1C
	IrDAControl     volatile.Register32 //0x20
	RXFIFOConfig    volatile.Register32 //0x24
	MiscInterrupt   volatile.Register32 //0x28
	VendorStatus    volatile.Register32 //0x2C, readonly
	reserved00      [3]uint32
	AuxStatus       volatile.Register32 //0x3C
}

var UARTARegs = (*UARTRegisterMap)(unsafe.Pointer(UARTABase))
var UARTBRegs = (*UARTRegisterMap)(unsafe.Pointer(UARTBBase))
var UARTCRegs = (*UARTRegisterMap)(unsafe.Pointer(UARTCBase))
var UARTDRegs = (*UARTRegisterMap)(unsafe.Pointer(UARTDBase))
var UARTERegs = (*UARTRegisterMap)(unsafe.Pointer(UARTEBase))
