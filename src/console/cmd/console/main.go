package main

import (
	"flag"
	"io"
	"log"

	tty "github.com/mattn/go-tty"
	"go.bug.st/serial"
)

///////////////////////////////////////////////////////////////////////
// console: raw terminal on this side, 8N1 serial link on the other.
// ctrl-] closes the session, like telnet.
///////////////////////////////////////////////////////////////////////

const escapeByte = 0x1D

var devicePath = flag.String("d", "/dev/ttyUSB0", "serial device connected to the target")
var baudRate = flag.Int("b", 115200, "baud rate, must match the target's init value")

func main() {
	flag.Parse()

	mode := &serial.Mode{
		BaudRate: *baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(*devicePath, mode)
	if err != nil {
		log.Fatalf("can't open %s: %v", *devicePath, err)
	}
	defer port.Close()

	term, err := tty.Open()
	if err != nil {
		log.Fatalf("can't take over the terminal: %v", err)
	}
	defer term.Close()
	restore := term.MustRaw()
	defer restore()

	//target -> terminal, runs until the port dies
	go func() {
		if _, err := io.Copy(term.Output(), port); err != nil {
			log.Printf("link dropped: %v", err)
		}
	}()

	//terminal -> target, byte at a time so the escape works mid-line
	buf := make([]byte, 1)
	for {
		n, err := term.Input().Read(buf)
		if err != nil {
			log.Printf("terminal read failed: %v", err)
			return
		}
		if n == 0 {
			continue
		}
		if buf[0] == escapeByte {
			return
		}
		if _, err := port.Write(buf[:n]); err != nil {
			log.Printf("serial write failed: %v", err)
			return
		}
	}
}
