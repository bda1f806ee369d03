// Package helpers parses the command-line and config values accepted by the
// KMS tools: bounded integers, boolean literals, hex strings, host:port
// addresses and time spans.
package helpers

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// StringToInt parses a base-10 integer and checks it against [min, max].
// The whole string must be consumed. An empty string reads as zero.
func StringToInt(s string, min, max uint32) (uint32, bool) {
	var v int64
	if s != "" {
		trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
		if trimmed == "" {
			return 0, false
		}
		var err error
		v, err = strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0, false
		}
	}
	if v < int64(min) || v > int64(max) {
		return 0, false
	}
	return uint32(v), true
}

// ParseBool accepts 1/0, yes/no, true/false and on/off in any case.
// ok is false for anything else.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true", "on":
		return true, true
	case "0", "no", "false", "off":
		return false, true
	}
	return false, false
}

// Hex2Bin decodes s into dst and returns the number of bytes written.
func Hex2Bin(dst []byte, s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return 0, fmt.Errorf("hex string has odd length %d", len(s))
	}
	if len(s)/2 > len(dst) {
		return 0, fmt.Errorf("hex string decodes to %d bytes, buffer holds %d", len(s)/2, len(dst))
	}
	n, err := hex.Decode(dst, []byte(s))
	if err != nil {
		return n, fmt.Errorf("invalid hex: %w", err)
	}
	return n, nil
}
