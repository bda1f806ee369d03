// Package keyfile loads AES keys stored as hex text.
package keyfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SunsetMkt/vlmcsd/pkg/helpers"
)

// LoadKeyHexFile loads an AES key from a .hex file.
// The first non-empty line must hold 32, 48 or 64 hexadecimal characters.
func LoadKeyHexFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return ParseKeyHex(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("key file is empty")
}

// ParseKeyHex decodes a 16, 24 or 32-byte key from hex.
func ParseKeyHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 32, 48, 64:
	default:
		return nil, fmt.Errorf("key must be 32, 48 or 64 hex chars, got %d", len(s))
	}
	key := make([]byte, len(s)/2)
	if _, err := helpers.Hex2Bin(key, s); err != nil {
		return nil, fmt.Errorf("invalid hex key: %w", err)
	}
	return key, nil
}
