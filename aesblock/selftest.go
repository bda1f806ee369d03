package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/SunsetMkt/vlmcsd/aesblock/internal/config"
	"github.com/SunsetMkt/vlmcsd/pkg/aes"
)

// knownAnswers are the FIPS-197 Appendix B and C vectors.
var knownAnswers = []struct {
	name, key, pt, ct string
}{
	{"FIPS-197 B", "2b7e151628aed2a6abf7158809cf4f3c", "3243f6a8885a308d313198a2e0370734", "3925841d02dc09fbdc118597196a0b32"},
	{"FIPS-197 C.1", "000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	{"FIPS-197 C.2", "000102030405060708090a0b0c0d0e0f1011121314151617", "00112233445566778899aabbccddeeff", "dda97ca4864cdfe06eaf70a0ec0d7191"},
	{"FIPS-197 C.3", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "00112233445566778899aabbccddeeff", "8ea2b7ca516745bfeafc49904b496089"},
}

func runSelfTest(configPath string) {
	cfg, err := config.LoadWithMode(configPath, config.ValidationSelfTest)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	failed := 0
	for _, ka := range knownAnswers {
		if err := checkKnownAnswer(ka.key, ka.pt, ka.ct); err != nil {
			slog.Error("known answer failed", "vector", ka.name, "error", err)
			failed++
			continue
		}
		slog.Info("known answer passed", "vector", ka.name)
	}

	sched, err := buildSchedule(cfg)
	if err != nil {
		log.Fatalf("key schedule failed: %v", err)
	}
	if err := checkRoundTrip(sched); err != nil {
		slog.Error("round trip failed", "variant", cfg.VariantValue(), "explicit_key", cfg.ExplicitKey(), "error", err)
		failed++
	} else {
		slog.Info("round trip passed", "variant", cfg.VariantValue(), "explicit_key", cfg.ExplicitKey(), "rounds", sched.Rounds())
	}

	if failed > 0 {
		slog.Error("self-test failed", "failures", failed)
		os.Exit(1)
	}
	slog.Info("self-test passed")
}

func checkKnownAnswer(keyHex, ptHex, ctHex string) error {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	block, err := hex.DecodeString(ptHex)
	if err != nil {
		return fmt.Errorf("decode plaintext: %w", err)
	}

	sched, err := aes.NewSchedule(key)
	if err != nil {
		return err
	}
	if err := sched.EncryptBlock(block); err != nil {
		return err
	}
	if got := hex.EncodeToString(block); got != ctHex {
		return &mismatchError{want: ctHex, got: got}
	}
	if err := sched.DecryptBlock(block); err != nil {
		return err
	}
	if got := hex.EncodeToString(block); got != ptHex {
		return &mismatchError{want: ptHex, got: got}
	}
	return nil
}

func checkRoundTrip(sched *aes.Schedule) error {
	plain := []byte("vlmcsd self-test")
	block := append([]byte(nil), plain...)
	if err := sched.EncryptBlock(block); err != nil {
		return err
	}
	if bytes.Equal(block, plain) {
		return &mismatchError{want: "ciphertext", got: hex.EncodeToString(block)}
	}
	if err := sched.DecryptBlock(block); err != nil {
		return err
	}
	if !bytes.Equal(block, plain) {
		return &mismatchError{want: hex.EncodeToString(plain), got: hex.EncodeToString(block)}
	}
	return nil
}

type mismatchError struct {
	want, got string
}

func (e *mismatchError) Error() string {
	return "want " + e.want + ", got " + e.got
}
