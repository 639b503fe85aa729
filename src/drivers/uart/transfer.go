package uart

import "composure/src/hardware/tegra"

// checkTransfer is the precondition every transfer operation shares.
func (u *Uart) checkTransfer() UartError {
	if u.state != stateReady {
		return UartNotReady
	}
	if u.latched {
		return UartLatchOpen
	}
	return UartOk
}

// WriteByte queues exactly one byte into the hardware transmit path.
// Blocking; when it returns the byte is in the FIFO, not necessarily on
// the wire yet.
func (u *Uart) WriteByte(b byte) UartError {
	if err := u.checkTransfer(); err != UartOk {
		return err
	}
	if err := u.waitTransmit(); err != UartOk {
		return err
	}
	u.dev.Write32(tegra.DataReg, uint32(b))
	return UartOk
}

// ReadByte consumes exactly one byte from the hardware receive path.
// Blocking; the read is destructive.
func (u *Uart) ReadByte() (byte, UartError) {
	if err := u.checkTransfer(); err != UartOk {
		return 0, err
	}
	if err := u.waitReceive(); err != UartOk {
		return 0, err
	}
	return byte(u.dev.Read32(tegra.DataReg)), UartOk
}

// Write sends the whole buffer and then drains the transmit shift
// register, so every bit is on the wire when it returns, not merely
// queued.  The count reports how many bytes were accepted before any
// error.
func (u *Uart) Write(buf []byte) (int, UartError) {
	for i, b := range buf {
		if err := u.WriteByte(b); err != UartOk {
			return i, err
		}
	}
	if err := u.waitTxIdle(); err != UartOk {
		return len(buf), err
	}
	return len(buf), UartOk
}

// Read fills the whole buffer, one destructive read per byte.  Blocking
// for as long as the other side stays quiet, up to the configured
// timeout per byte.
func (u *Uart) Read(buf []byte) (int, UartError) {
	for i := range buf {
		b, err := u.ReadByte()
		if err != UartOk {
			return i, err
		}
		buf[i] = b
	}
	return len(buf), UartOk
}

// WriteString sends a string and drains the shift register, like Write.
func (u *Uart) WriteString(s string) UartError {
	for i := 0; i < len(s); i++ {
		if err := u.WriteByte(s[i]); err != UartOk {
			return err
		}
	}
	return u.waitTxIdle()
}

// WriteCR sends a carriage return (and secretly a line feed).
func (u *Uart) WriteCR() UartError {
	if err := u.WriteByte(13); err != UartOk {
		return err
	}
	return u.WriteByte(10)
}
