// Package chain frames multi-block messages around the single-block cipher:
// ECB, CBC, ISO/IEC 9797-1 method 2 padding and AES-CMAC.
package chain

import (
	"errors"
	"fmt"

	"github.com/SunsetMkt/vlmcsd/pkg/aes"
)

// BlockCipher is an in-place single block cipher such as *aes.Schedule.
type BlockCipher interface {
	EncryptBlock(block []byte) error
	DecryptBlock(block []byte) error
}

func EncryptECB(c BlockCipher, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ECB encrypt: data not block aligned")
	}
	out := append([]byte(nil), data...)
	for i := 0; i < len(out); i += aes.BlockSize {
		if err := c.EncryptBlock(out[i : i+aes.BlockSize]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func DecryptECB(c BlockCipher, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ECB decrypt: data not block aligned")
	}
	out := append([]byte(nil), data...)
	for i := 0; i < len(out); i += aes.BlockSize {
		if err := c.DecryptBlock(out[i : i+aes.BlockSize]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func EncryptCBC(c BlockCipher, iv, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("CBC encrypt: data not block aligned")
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("CBC encrypt: IV must be %d bytes", aes.BlockSize)
	}
	out := append([]byte(nil), data...)
	prev := iv
	for i := 0; i < len(out); i += aes.BlockSize {
		blk := out[i : i+aes.BlockSize]
		if err := aes.XorBlock(prev, blk); err != nil {
			return nil, err
		}
		if err := c.EncryptBlock(blk); err != nil {
			return nil, err
		}
		prev = blk
	}
	return out, nil
}

func DecryptCBC(c BlockCipher, iv, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("CBC decrypt: data not block aligned")
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("CBC decrypt: IV must be %d bytes", aes.BlockSize)
	}
	out := append([]byte(nil), data...)
	prev := iv
	for i := 0; i < len(out); i += aes.BlockSize {
		blk := out[i : i+aes.BlockSize]
		if err := c.DecryptBlock(blk); err != nil {
			return nil, err
		}
		// data still holds the ciphertext of this block.
		if err := aes.XorBlock(prev, blk); err != nil {
			return nil, err
		}
		prev = data[i : i+aes.BlockSize]
	}
	return out, nil
}

// PadISO9797M2 appends 0x80 and zero bytes up to the next block boundary.
// Block-aligned input gains a full block.
func PadISO9797M2(data []byte) []byte {
	padLen := aes.BlockSize - (len(data) % aes.BlockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	out[len(data)] = 0x80
	return out
}

func UnpadISO9797M2(data []byte) ([]byte, error) {
	idx := len(data) - 1
	for idx >= 0 && data[idx] == 0x00 {
		idx--
	}
	if idx < 0 || data[idx] != 0x80 || len(data)-idx > aes.BlockSize {
		return nil, errors.New("bad padding")
	}
	return data[:idx], nil
}

// CMAC computes the RFC 4493 AES-CMAC of msg.
func CMAC(c BlockCipher, msg []byte) ([]byte, error) {
	k1, k2, err := generateCMACSubkeys(c)
	if err != nil {
		return nil, err
	}

	n := (len(msg) + aes.BlockSize - 1) / aes.BlockSize
	if n == 0 {
		n = 1
	}
	lastComplete := len(msg) != 0 && len(msg)%aes.BlockSize == 0

	last := make([]byte, aes.BlockSize)
	if lastComplete {
		copy(last, msg[(n-1)*aes.BlockSize:])
		if err := aes.XorBlock(k1, last); err != nil {
			return nil, err
		}
	} else {
		remain := len(msg) - (n-1)*aes.BlockSize
		copy(last, msg[(n-1)*aes.BlockSize:])
		last[remain] = 0x80
		if err := aes.XorBlock(k2, last); err != nil {
			return nil, err
		}
	}

	x := make([]byte, aes.BlockSize)
	for i := 0; i < n-1; i++ {
		start := i * aes.BlockSize
		if err := aes.XorBlock(msg[start:start+aes.BlockSize], x); err != nil {
			return nil, err
		}
		if err := c.EncryptBlock(x); err != nil {
			return nil, err
		}
	}
	if err := aes.XorBlock(last, x); err != nil {
		return nil, err
	}
	if err := c.EncryptBlock(x); err != nil {
		return nil, err
	}
	return x, nil
}

func generateCMACSubkeys(c BlockCipher) (k1, k2 []byte, err error) {
	const rb = 0x87
	L := make([]byte, aes.BlockSize)
	if err := c.EncryptBlock(L); err != nil {
		return nil, nil, err
	}

	k1 = make([]byte, aes.BlockSize)
	leftShift1(k1, L)
	if (L[0] & 0x80) != 0 {
		k1[aes.BlockSize-1] ^= rb
	}

	k2 = make([]byte, aes.BlockSize)
	leftShift1(k2, k1)
	if (k1[0] & 0x80) != 0 {
		k2[aes.BlockSize-1] ^= rb
	}
	return k1, k2, nil
}

func leftShift1(dst, src []byte) {
	var carry byte
	for i := len(src) - 1; i >= 0; i-- {
		b := src[i]
		dst[i] = (b << 1) | carry
		carry = (b >> 7) & 1
	}
}
