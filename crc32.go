package mdexport

// Reflected CRC-32 as required by the ZIP local and central headers:
// polynomial 0xEDB88320, seed 0xFFFFFFFF, final complement, driven by a
// precomputed 256-entry table.

const crcPoly = 0xEDB88320

var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPoly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

// crc32Sum computes the checksum over the exact bytes given.
func crc32Sum(data []byte) uint32 {
	c := ^uint32(0)
	for _, b := range data {
		c = crcTable[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}
