package aes

// XorBlock sets dst[i] ^= src[i] for each of the BlockSize bytes. src and dst
// may be the same slice, in which case dst becomes all zero.
func XorBlock(src, dst []byte) error {
	if len(src) != BlockSize {
		return &Error{Op: "xor block", Kind: InvalidBlockLength, Value: len(src)}
	}
	if len(dst) != BlockSize {
		return &Error{Op: "xor block", Kind: InvalidBlockLength, Value: len(dst)}
	}
	for i := 0; i < BlockSize; i++ {
		dst[i] ^= src[i]
	}
	return nil
}
