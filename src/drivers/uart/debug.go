package uart

// Hex32String pushes d out as eight uppercase hex digits and a trailing
// space.  Handy for printf-free debugging on the far side of the link.
func (u *Uart) Hex32String(d uint32) UartError {
	var rb uint32
	var rc uint32

	rb = 32
	for {
		rb -= 4
		rc = (d >> rb) & 0xF
		if rc > 9 {
			rc += 0x37
		} else {
			rc += 0x30
		}
		if err := u.WriteByte(uint8(rc)); err != UartOk {
			return err
		}
		if rb == 0 {
			break
		}
	}
	return u.WriteByte(0x20)
}

// Hex64String is Hex32String for 16 digits.
func (u *Uart) Hex64String(d uint64) UartError {
	if err := u.Hex32String(uint32(d >> 32)); err != UartOk {
		return err
	}
	return u.Hex32String(uint32(d))
}

// DumpBuffer sends a classic hex+ascii dump of buf, 16 bytes per line.
func (u *Uart) DumpBuffer(buf []byte) UartError {
	for base := 0; base < len(buf); base += 16 {
		if err := u.Hex32String(uint32(base)); err != UartOk {
			return err
		}
		end := base + 16
		if end > len(buf) {
			end = len(buf)
		}
		for i := base; i < end; i++ {
			c := buf[i]
			for _, nibble := range []byte{c >> 4, c & 0xF} {
				if nibble > 9 {
					nibble += 0x37
				} else {
					nibble += 0x30
				}
				if err := u.WriteByte(nibble); err != UartOk {
					return err
				}
			}
			if err := u.WriteByte(' '); err != UartOk {
				return err
			}
		}
		for i := base; i < end; i++ {
			c := buf[i]
			if c < 32 || c > 127 {
				c = '.'
			}
			if err := u.WriteByte(c); err != UartOk {
				return err
			}
		}
		if err := u.WriteCR(); err != UartOk {
			return err
		}
	}
	return UartOk
}
