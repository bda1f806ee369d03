package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/SunsetMkt/vlmcsd/aesblock/internal/chain"
	"github.com/SunsetMkt/vlmcsd/aesblock/internal/config"
	"github.com/SunsetMkt/vlmcsd/aesblock/internal/keyfile"
	"github.com/SunsetMkt/vlmcsd/pkg/aes"
	"github.com/SunsetMkt/vlmcsd/pkg/helpers"
)

const configFileName = "config.yaml"

func main() {
	configFlag := flag.String("config", "", "path to config.yaml (default: next to the executable, then cwd)")
	decrypt := flag.Bool("d", false, "decrypt instead of encrypt (ecb/cbc)")
	inHex := flag.String("in", "", "input as hex (default: read hex from stdin)")
	selfTest := flag.Bool("selftest", false, "run known-answer tests against the configured key and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	// Configure slog
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if *logFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	configPath := *configFlag
	if configPath == "" {
		var err error
		configPath, err = defaultConfigPath()
		if err != nil {
			log.Fatalf("resolve config path failed: %v", err)
		}
	}
	slog.Debug("using config", "path", configPath)

	if *selfTest {
		runSelfTest(configPath)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	sched, err := buildSchedule(cfg)
	if err != nil {
		log.Fatalf("key schedule failed: %v", err)
	}

	input, err := readInput(*inHex, cfg.PromptForKey())
	if err != nil {
		log.Fatalf("read input failed: %v", err)
	}
	slog.Debug("input decoded", "bytes", len(input), "mode", cfg.Cipher.Mode, "decrypt", *decrypt)

	out, err := run(cfg, sched, input, *decrypt)
	if err != nil {
		log.Fatalf("%s failed: %v", cfg.Cipher.Mode, err)
	}
	fmt.Println(strings.ToUpper(hex.EncodeToString(out)))
}

func run(cfg *config.Config, sched *aes.Schedule, input []byte, decrypt bool) ([]byte, error) {
	padding := cfg.Cipher.Padding != nil && *cfg.Cipher.Padding

	switch cfg.Cipher.Mode {
	case config.ModeCMAC:
		if decrypt {
			return nil, errors.New("-d is not supported with mode cmac")
		}
		return chain.CMAC(sched, input)

	case config.ModeECB, config.ModeCBC:
		iv := make([]byte, aes.BlockSize)
		if cfg.Cipher.IVHex != "" {
			if _, err := helpers.Hex2Bin(iv, cfg.Cipher.IVHex); err != nil {
				return nil, fmt.Errorf("iv: %w", err)
			}
		}

		if decrypt {
			var pt []byte
			var err error
			if cfg.Cipher.Mode == config.ModeCBC {
				pt, err = chain.DecryptCBC(sched, iv, input)
			} else {
				pt, err = chain.DecryptECB(sched, input)
			}
			if err != nil || !padding {
				return pt, err
			}
			return chain.UnpadISO9797M2(pt)
		}

		if padding {
			input = chain.PadISO9797M2(input)
		}
		if cfg.Cipher.Mode == config.ModeCBC {
			return chain.EncryptCBC(sched, iv, input)
		}
		return chain.EncryptECB(sched, input)

	default:
		return nil, fmt.Errorf("unsupported mode %q", cfg.Cipher.Mode)
	}
}

func buildSchedule(cfg *config.Config) (*aes.Schedule, error) {
	variant := cfg.VariantValue()

	var key []byte
	switch {
	case cfg.Key.HexFile != "":
		k, err := keyfile.LoadKeyHexFile(cfg.Key.HexFile)
		if err != nil {
			return nil, fmt.Errorf("key file invalid: %w", err)
		}
		key = k
		slog.Debug("using key file", "path", cfg.Key.HexFile, "bits", len(key)*8)
	case cfg.PromptForKey():
		k, err := promptKeyHex()
		if err != nil {
			return nil, err
		}
		key = k
	default:
		slog.Debug("using built-in key", "variant", variant)
		return aes.NewBuiltinSchedule(variant)
	}
	return aes.BuildSchedule(key, variant, len(key))
}

func promptKeyHex() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("config.key.prompt requires a terminal on stdin")
	}
	fmt.Fprint(os.Stderr, "AES key (hex): ")
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	return keyfile.ParseKeyHex(string(line))
}

func readInput(inHex string, stdinIsTerminalKey bool) ([]byte, error) {
	if inHex == "" {
		if stdinIsTerminalKey {
			return nil, errors.New("-in is required when the key is read from the terminal")
		}
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		inHex = string(bytes.Join(bytes.Fields(raw), nil))
	}
	buf := make([]byte, len(inHex)/2)
	n, err := helpers.Hex2Bin(buf, inHex)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func defaultConfigPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	exeConfigPath := filepath.Join(filepath.Dir(exePath), configFileName)
	if fileExists(exeConfigPath) {
		return exeConfigPath, nil
	}

	// Fallback for `go run`, where the executable is placed in a temp directory.
	cwd, err := os.Getwd()
	if err != nil {
		return exeConfigPath, nil
	}
	cwdConfigPath := filepath.Join(cwd, configFileName)
	if fileExists(cwdConfigPath) {
		return cwdConfigPath, nil
	}
	return exeConfigPath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
