package tegra

// The Tegra X1 carries five identical 16550-class UART blocks: four
// general purpose ones on APB and a fifth inside the audio processing
// engine.  Each block is 13 registers of 32 bits at the offsets below.
// The device clock tops out at 200MHz and every symbol takes 16 clock
// cycles to sample, so 12.5M baud is the ceiling.

const UARTABase = uintptr(0x70006000)
const UARTBBase = uintptr(0x70006040)
const UARTCBase = uintptr(0x70006200)
const UARTDBase = uintptr(0x70006300)
const UARTEBase = uintptr(0x70006400) //audio processing engine

// Register offsets within one UART block.  The first two registers are
// modal: while the divisor latch bit is set in the line control register
// they hold the low and high bytes of the baud divisor instead of the
// data holding register and the interrupt enable register.
const (
	DataReg            = 0x00 //tx/rx holding, divisor low under latch
	InterruptEnableReg = 0x04 //divisor high under latch
	FIFOControlReg     = 0x08 //interrupt identification on read
	LineControlReg     = 0x0C
	ModemControlReg    = 0x10
	LineStatusReg      = 0x14 //readonly
	ModemStatusReg     = 0x18 //readonly
	ScratchReg         = 0x1C
	IrDAControlReg     = 0x20
	RXFIFOConfigReg    = 0x24
	MiscInterruptReg   = 0x28
	VendorStatusReg    = 0x2C //readonly
	AuxStatusReg       = 0x3C
)

// fifo control register bitfields
const FIFOEnable = 1 << 0
const RXClear = 1 << 1 //self-clearing once the receive fifo is reset
const TXClear = 1 << 2 //self-clearing once the transmit fifo is reset
const DMAMode1 = 1 << 3
const TXTriggerMask = 3 << 4 //use with ReplaceBits
const TXTriggerCountGreater16 = 0 << 4
const TXTriggerCountGreater8 = 1 << 4
const TXTriggerCountGreater4 = 2 << 4
const TXTriggerCountGreater1 = 3 << 4
const RXTriggerMask = 3 << 6
const RXTriggerCountGreater16 = 0 << 6
const RXTriggerCountGreater8 = 1 << 6
const RXTriggerCountGreater4 = 2 << 6
const RXTriggerCountGreater1 = 3 << 6

// interrupt identification register bitfields (read side of 0x08)
const NoInterruptPending = 1 << 0
const InterruptIDMask = 7 << 1
const FIFOModeMask = 3 << 6 //0 = 16450 (no fifo), 1 = 16550 (fifo)
const FIFOMode16550 = 1 << 6

// line control register bitfields
const WordLength5 = 0 << 0
const WordLength6 = 1 << 0
const WordLength7 = 2 << 0
const WordLength8 = 3 << 0
const TwoStopBits = 1 << 2
const ParityEnable = 1 << 3
const ParityEven = 1 << 4
const ParityForce = 1 << 5
const BreakCondition = 1 << 6
const DivisorLatch = 1 << 7

// line status register bitfields
const DataReady = 1 << 0
const ReceiveOverrun = 1 << 1
const ParityError = 1 << 2
const FramingError = 1 << 3
const BreakDetected = 1 << 4
const TransmitHoldingEmpty = 1 << 5 //ok to queue another byte
const TransmitShiftEmpty = 1 << 6   //every bit is on the wire
const ReceiveFIFOError = 1 << 7
const TransmitFIFOFull = 1 << 8
const ReceiveFIFOEmpty = 1 << 9

// vendor status register bitfields
const TXIdle = 1 << 0
const RXIdle = 1 << 1
const RXUnderrun = 1 << 2 //sticky until read
const TXOverrun = 1 << 3  //sticky until read
const RXFIFOCountMask = 63 << 16
const TXFIFOCountMask = 63 << 24
