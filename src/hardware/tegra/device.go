package tegra

// Device is the substrate every driver in this tree reasons about: a
// block of 32 bit cells addressed by byte offset, where every access
// reaches the backend.  On hardware this is memory mapped i/o; tests
// substitute an in-memory implementation that scripts status bits.
type Device interface {
	Read32(offset uint32) uint32
	Write32(offset uint32, value uint32)
}
