package aes

import "crypto/cipher"

var _ cipher.Block = (*Schedule)(nil)

// EncryptBlock encrypts block in place. block must be exactly BlockSize bytes.
func (s *Schedule) EncryptBlock(block []byte) error {
	if err := s.check("encrypt block", block); err != nil {
		return err
	}
	s.encrypt((*[BlockSize]byte)(block))
	return nil
}

// DecryptBlock decrypts block in place. block must be exactly BlockSize bytes.
func (s *Schedule) DecryptBlock(block []byte) error {
	if err := s.check("decrypt block", block); err != nil {
		return err
	}
	s.decrypt((*[BlockSize]byte)(block))
	return nil
}

// BlockSize implements cipher.Block.
func (s *Schedule) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block. Like crypto/aes it panics when src or dst
// is shorter than a block or the schedule was never built.
func (s *Schedule) Encrypt(dst, src []byte) {
	s.mustCopy("aes: encrypt", dst, src)
	s.encrypt((*[BlockSize]byte)(dst))
}

// Decrypt implements cipher.Block. See Encrypt for the panic conditions.
func (s *Schedule) Decrypt(dst, src []byte) {
	s.mustCopy("aes: decrypt", dst, src)
	s.decrypt((*[BlockSize]byte)(dst))
}

func (s *Schedule) check(op string, block []byte) error {
	if s == nil || s.rounds == 0 {
		return &Error{Op: op, Kind: UninitializedSchedule}
	}
	if len(block) != BlockSize {
		return &Error{Op: op, Kind: InvalidBlockLength, Value: len(block)}
	}
	return nil
}

func (s *Schedule) mustCopy(op string, dst, src []byte) {
	if s == nil || s.rounds == 0 {
		panic(op + ": uninitialized schedule")
	}
	if len(src) < BlockSize {
		panic(op + ": input not full block")
	}
	if len(dst) < BlockSize {
		panic(op + ": output not full block")
	}
	copy(dst[:BlockSize], src[:BlockSize])
}

func (s *Schedule) encrypt(state *[BlockSize]byte) {
	addRoundKey(state, &s.keys[0])
	for r := 1; r < s.rounds; r++ {
		subBytes(state, &sbox)
		shiftRows(state)
		mixColumns(state)
		addRoundKey(state, &s.keys[r])
	}
	subBytes(state, &sbox)
	shiftRows(state)
	addRoundKey(state, &s.keys[s.rounds])
}

func (s *Schedule) decrypt(state *[BlockSize]byte) {
	addRoundKey(state, &s.keys[s.rounds])
	for r := s.rounds - 1; r > 0; r-- {
		invShiftRows(state)
		subBytes(state, &invSbox)
		addRoundKey(state, &s.keys[r])
		invMixColumns(state)
	}
	invShiftRows(state)
	subBytes(state, &invSbox)
	addRoundKey(state, &s.keys[0])
}

// The state is column-major: byte r+4c holds row r of column c, which is the
// order the block arrives in.

func addRoundKey(state, key *[BlockSize]byte) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func subBytes(state *[BlockSize]byte, box *[256]byte) {
	for i, b := range state {
		state[i] = box[b]
	}
}

// shiftRows rotates row r left by r columns.
func shiftRows(s *[BlockSize]byte) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func invShiftRows(s *[BlockSize]byte) {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

// mixColumns multiplies each column by the circulant matrix (02 03 01 01).
func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[c] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// invMixColumns multiplies each column by the circulant matrix (0e 0b 0d 09).
func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		s[c+1] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		s[c+2] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		s[c+3] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}
