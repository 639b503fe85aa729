package tegra

import "testing"

func TestConfigureUARTPads(t *testing.T) {
	mux := newFakeBlock()
	ConfigureUARTPads(mux, UARTC)

	if got := mux.regs[PinUART3TXReg]; got != 0 {
		t.Errorf("tx pad is %#x, expected driven low config 0", got)
	}
	if got := mux.regs[PinUART3RXReg]; got != InputEnable|PullUp {
		t.Errorf("rx pad is %#x, expected input with pull up", got)
	}
	if got := mux.regs[PinUART3RTSReg]; got != 0 {
		t.Errorf("rts pad is %#x, expected 0", got)
	}
	if got := mux.regs[PinUART3CTSReg]; got != InputEnable|PullDown {
		t.Errorf("cts pad is %#x, expected input with pull down", got)
	}
	if len(mux.writes) != 4 {
		t.Errorf("%d pad writes for one instance, expected 4", len(mux.writes))
	}
}

func TestConfigureUARTPadsSkipsAPE(t *testing.T) {
	mux := newFakeBlock()
	ConfigureUARTPads(mux, UARTE)
	if len(mux.writes) != 0 {
		t.Errorf("APE instance has no pads but %d writes landed", len(mux.writes))
	}
}
