package main

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/SunsetMkt/vlmcsd/aesblock/internal/config"
	"github.com/SunsetMkt/vlmcsd/pkg/aes"
)

func boolPtr(b bool) *bool { return &b }

func TestRunCBCRoundTripWithBuiltinKey(t *testing.T) {
	cfg := &config.Config{
		Key:    config.KeyConfig{Variant: "v6"},
		Cipher: config.CipherConfig{Mode: config.ModeCBC, IVHex: "000102030405060708090A0B0C0D0E0F", Padding: boolPtr(true)},
	}
	sched, err := buildSchedule(cfg)
	if err != nil {
		t.Fatalf("buildSchedule returned error: %v", err)
	}

	msg := []byte("activation request")
	ct, err := run(cfg, sched, msg, false)
	if err != nil {
		t.Fatalf("encrypt returned error: %v", err)
	}
	if len(ct) != 32 {
		t.Fatalf("expected 32 ciphertext bytes, got %d", len(ct))
	}

	pt, err := run(cfg, sched, ct, true)
	if err != nil {
		t.Fatalf("decrypt returned error: %v", err)
	}
	if string(pt) != string(msg) {
		t.Fatalf("round trip mismatch: %q", pt)
	}
}

func TestRunECBWithoutPaddingMatchesKnownAnswer(t *testing.T) {
	cfg := &config.Config{
		Key:    config.KeyConfig{Variant: "v5"},
		Cipher: config.CipherConfig{Mode: config.ModeECB, Padding: boolPtr(false)},
	}
	sched, err := aes.NewSchedule(mustDecode(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	if err != nil {
		t.Fatalf("NewSchedule returned error: %v", err)
	}

	out, err := run(cfg, sched, mustDecode(t, "3243f6a8885a308d313198a2e0370734"), false)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := hex.EncodeToString(out); got != "3925841d02dc09fbdc118597196a0b32" {
		t.Fatalf("unexpected ciphertext %s", got)
	}
}

func TestRunCMACRejectsDecrypt(t *testing.T) {
	cfg := &config.Config{
		Key:    config.KeyConfig{Variant: "v5"},
		Cipher: config.CipherConfig{Mode: config.ModeCMAC},
	}
	sched, err := buildSchedule(cfg)
	if err != nil {
		t.Fatalf("buildSchedule returned error: %v", err)
	}

	if _, err := run(cfg, sched, nil, true); err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("expected decrypt rejection, got %v", err)
	}
	mac, err := run(cfg, sched, []byte("payload"), false)
	if err != nil || len(mac) != aes.BlockSize {
		t.Fatalf("expected 16-byte MAC, got %x, %v", mac, err)
	}
}

func TestReadInputFromHexFlag(t *testing.T) {
	got, err := readInput("00ff10", false)
	if err != nil {
		t.Fatalf("readInput returned error: %v", err)
	}
	if hex.EncodeToString(got) != "00ff10" {
		t.Fatalf("unexpected bytes %x", got)
	}

	if _, err := readInput("abc", false); err == nil {
		t.Fatalf("expected odd length error")
	}
	if _, err := readInput("", true); err == nil || !strings.Contains(err.Error(), "-in is required") {
		t.Fatalf("expected -in required error, got %v", err)
	}
}

func TestSelfTestChecks(t *testing.T) {
	for _, ka := range knownAnswers {
		if err := checkKnownAnswer(ka.key, ka.pt, ka.ct); err != nil {
			t.Fatalf("%s: %v", ka.name, err)
		}
	}
	if err := checkKnownAnswer(knownAnswers[0].key, knownAnswers[0].pt, knownAnswers[1].ct); err == nil {
		t.Fatalf("expected mismatch for wrong ciphertext")
	}

	err := checkKnownAnswer("2b7e15162z", knownAnswers[0].pt, knownAnswers[0].ct)
	if err == nil || !strings.Contains(err.Error(), "decode key") || aes.IsInvalidKeyLength(err) {
		t.Fatalf("expected key decode error, got %v", err)
	}
	err = checkKnownAnswer(knownAnswers[0].key, "3243f6a8885a308d313198a2e03707zz", knownAnswers[0].ct)
	if err == nil || !strings.Contains(err.Error(), "decode plaintext") || aes.IsInvalidBlockLength(err) {
		t.Fatalf("expected plaintext decode error, got %v", err)
	}

	for _, v := range []aes.Variant{aes.V5, aes.V6} {
		sched, err := aes.NewBuiltinSchedule(v)
		if err != nil {
			t.Fatalf("NewBuiltinSchedule(%s): %v", v, err)
		}
		if err := checkRoundTrip(sched); err != nil {
			t.Fatalf("round trip %s: %v", v, err)
		}
	}
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return b
}
