package aes

// BlockSize is the AES block size in bytes.
const BlockSize = 16

const maxRounds = 14

// Schedule is an expanded AES key. It is immutable once built and safe for
// concurrent use by any number of goroutines.
type Schedule struct {
	rounds int
	keys   [maxRounds + 1][BlockSize]byte
}

// BuildSchedule expands key into a Schedule for a keyLen-byte AES key.
//
// A nil key selects the built-in key of variant v, in which case keyLen must
// be 16. Otherwise the first keyLen bytes of key are used and v is ignored.
// The key bytes are copied; the caller keeps ownership of key.
func BuildSchedule(key []byte, v Variant, keyLen int) (*Schedule, error) {
	if key == nil {
		if !v.valid() {
			return nil, &Error{Op: "build schedule", Kind: UnknownVariant, Value: int(v)}
		}
		builtin := builtinKeys[v]
		if keyLen != len(builtin) {
			return nil, &Error{Op: "build schedule", Kind: InvalidKeyLength, Value: keyLen}
		}
		key = builtin[:]
	}

	rounds, ok := roundsFor(keyLen)
	if !ok {
		return nil, &Error{Op: "build schedule", Kind: InvalidKeyLength, Value: keyLen}
	}
	if len(key) < keyLen {
		return nil, &Error{Op: "build schedule", Kind: InvalidKeyLength, Value: len(key)}
	}

	s := &Schedule{rounds: rounds}
	s.expand(key[:keyLen])
	return s, nil
}

// NewSchedule expands an explicit 16, 24 or 32-byte key.
func NewSchedule(key []byte) (*Schedule, error) {
	if key == nil {
		return nil, &Error{Op: "build schedule", Kind: InvalidKeyLength, Value: 0}
	}
	return BuildSchedule(key, V5, len(key))
}

// NewBuiltinSchedule expands the built-in AES-128 key of variant v.
func NewBuiltinSchedule(v Variant) (*Schedule, error) {
	return BuildSchedule(nil, v, 16)
}

// Rounds returns the number of cipher rounds: 10, 12 or 14.
func (s *Schedule) Rounds() int {
	if s == nil {
		return 0
	}
	return s.rounds
}

func roundsFor(keyLen int) (int, bool) {
	switch keyLen {
	case 16, 24, 32:
		return keyLen/4 + 6, true
	default:
		return 0, false
	}
}

// expand runs the FIPS-197 key expansion. Word i of the schedule lands in
// round key i/4 at byte offset 4*(i%4), which matches the column-major
// layout of the cipher state.
func (s *Schedule) expand(key []byte) {
	nk := len(key) / 4
	total := 4 * (s.rounds + 1)

	var w [4 * (maxRounds + 1)][4]byte
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < total; i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		for j := range t {
			w[i][j] = w[i-nk][j] ^ t[j]
		}
	}

	for i := 0; i < total; i++ {
		copy(s.keys[i/4][4*(i%4):], w[i][:])
	}
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

func subWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
