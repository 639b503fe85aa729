// +build tegra

package tick

import "composure/src/hardware/tegra"

type timerSource struct {
	dev tegra.Device
}

// Hardware returns the Source backed by the TIMERUS fixed time base.
// The counter is assumed to be configured by early boot already.
func Hardware() Source {
	return timerSource{dev: tegra.MMIODevice(tegra.TimerBase)}
}

func (t timerSource) Microseconds() uint32 {
	return t.dev.Read32(tegra.TimerUSCounterReg)
}
