package uart

import (
	"composure/src/hardware/tegra"
	"composure/src/lib/tick"
)

type UartError int32

const (
	UartOk          UartError = 0
	UartTimeout     UartError = -1
	UartNotReady    UartError = -2
	UartBadBaud     UartError = -3
	UartLatchOpen   UartError = -4
	UartShortBuffer UartError = -5
)

func (e UartError) Error() string {
	return e.String()
}

func (e UartError) String() string {
	switch e {
	case 0:
		return "UartOk"
	case -1:
		return "UartTimeout"
	case -2:
		return "UartNotReady"
	case -3:
		return "UartBadBaud"
	case -4:
		return "UartLatchOpen"
	case -5:
		return "UartShortBuffer"
	}
	return "BadUartErrorValue"
}

// MaxBaudRate is the 200MHz device clock divided by the 16 cycles each
// symbol needs for sampling.
const MaxBaudRate = 12_500_000

// Gate is the clock-gate collaborator.  Until Enable returns, register
// access on the instance is undefined hardware behavior.
type Gate interface {
	Enable()
}

// Status selects line conditions for WaitStatus.
type Status uint32

const (
	TXIdle Status = tegra.TXIdle //no transmission in flight
	RXIdle Status = tegra.RXIdle //no reception in flight
)

// Config carries the per-handle policy knobs.
type Config struct {
	// TimeoutMicros bounds every status poll; when a poll exceeds it the
	// operation fails with UartTimeout.  Zero disables the bound, which
	// spins forever on absent hardware and is only acceptable in a boot
	// context where no scheduler or recovery path exists yet.
	TimeoutMicros uint32
}

type uartState int32

const (
	stateUninitialized uartState = iota
	stateInitializing
	stateReady
)

// Uart drives one transceiver instance.  The handle is single owner:
// there is no internal locking, and two execution contexts driving the
// same instance race on FIFO state.  Callers needing to share one must
// wrap it in their own mutual exclusion.
type Uart struct {
	dev     tegra.Device
	gate    Gate
	src     tick.Source
	conf    Config
	baud    uint32
	state   uartState
	latched bool
}

// NewUart wires a driver to a register block, its clock gate, and a
// microsecond source.  The handle is not usable until Init succeeds.
func NewUart(dev tegra.Device, gate Gate, src tick.Source, conf Config) *Uart {
	return &Uart{dev: dev, gate: gate, src: src, conf: conf}
}

// Baud reports the rate configured by the last successful Init, zero
// before that.
func (u *Uart) Baud() uint32 {
	if u.state != stateReady {
		return 0
	}
	return u.baud
}

// Ready is true once Init has completed and transfer operations are
// legal.
func (u *Uart) Ready() bool {
	return u.state == stateReady
}
