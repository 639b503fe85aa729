package tegra

// Pin multiplexer.  Each multi-purpose pad picks one of up to four
// special functions or GPIO through its pinmux register.  Only the UART
// pads are declared; the rest of the block is irrelevant to this tree.

const PinmuxBase = uintptr(0x70003000)

const (
	PinUART1TXReg  = 0x0E4
	PinUART1RXReg  = 0x0E8
	PinUART1RTSReg = 0x0EC
	PinUART1CTSReg = 0x0F0
	PinUART2TXReg  = 0x0F4
	PinUART2RXReg  = 0x0F8
	PinUART2RTSReg = 0x0FC
	PinUART2CTSReg = 0x100
	PinUART3TXReg  = 0x104
	PinUART3RXReg  = 0x108
	PinUART3RTSReg = 0x10C
	PinUART3CTSReg = 0x110
	PinUART4TXReg  = 0x114
	PinUART4RXReg  = 0x118
	PinUART4RTSReg = 0x11C
	PinUART4CTSReg = 0x120
)

// pinmux register bitfields
const PullNone = 0 << 2
const PullDown = 1 << 2
const PullUp = 2 << 2
const Tristate = 1 << 4 //output driver off, overrides everything else
const Parked = 1 << 5
const InputEnable = 1 << 6
const LockWrites = 1 << 7 //sticky until reset or deep sleep exit

// ConfigureUARTPads points the pads for one instance at their serial
// function: TX driven, RX pulled up, RTS driven, CTS pulled down.  Must
// run before the instance is initialized.  The APE UART has no pads on
// this board and is left alone.
func ConfigureUARTPads(dev Device, inst *UARTInstance) {
	var tx uint32
	switch inst.Base {
	case UARTABase:
		tx = PinUART1TXReg
	case UARTBBase:
		tx = PinUART2TXReg
	case UARTCBase:
		tx = PinUART3TXReg
	case UARTDBase:
		tx = PinUART4TXReg
	default:
		return
	}
	dev.Write32(tx, 0)
	dev.Write32(tx+4, InputEnable|PullUp)    //rx
	dev.Write32(tx+8, 0)                     //rts
	dev.Write32(tx+12, InputEnable|PullDown) //cts
}
