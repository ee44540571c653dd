package sha256

import "encoding/binary"

// PadBlocks applies FIPS 180-4 padding to msg on the host and returns the
// padded message as 512-bit blocks of big-endian 32-bit words, the shape
// Compress and Hash consume. Padding is host-side pre-processing; the
// constrained path starts at whole blocks.
func PadBlocks(msg []byte) [][16]uint32 {
	padded := make([]byte, 0, len(msg)+72)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	padded = binary.BigEndian.AppendUint64(padded, uint64(len(msg))*8)

	blocks := make([][16]uint32, len(padded)/64)
	for i := range blocks {
		for j := 0; j < 16; j++ {
			blocks[i][j] = binary.BigEndian.Uint32(padded[i*64+j*4:])
		}
	}
	return blocks
}
