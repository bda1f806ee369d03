package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SunsetMkt/vlmcsd/pkg/aes"
)

type ValidationMode int

const (
	ValidationFull ValidationMode = iota
	ValidationSelfTest
)

// Cipher modes understood by the chain package.
const (
	ModeECB  = "ecb"
	ModeCBC  = "cbc"
	ModeCMAC = "cmac"
)

type Config struct {
	Key    KeyConfig    `yaml:"key"`
	Cipher CipherConfig `yaml:"cipher"`
}

type KeyConfig struct {
	Variant string `yaml:"variant"`
	HexFile string `yaml:"hex_file"`
	Prompt  *bool  `yaml:"prompt"`
}

type CipherConfig struct {
	Mode    string `yaml:"mode"`
	IVHex   string `yaml:"iv_hex"`
	Padding *bool  `yaml:"padding"`
}

func Load(path string) (*Config, error) {
	return LoadWithMode(path, ValidationFull)
}

func LoadWithMode(path string, mode ValidationMode) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.resolvePaths(path)
	if err := cfg.ValidateWithMode(mode); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return c.ValidateWithMode(ValidationFull)
}

func (c *Config) ValidateWithMode(mode ValidationMode) error {
	if err := c.validateKey(); err != nil {
		return err
	}

	switch mode {
	case ValidationSelfTest:
		return nil
	case ValidationFull:
		return c.validateCipher()
	default:
		return fmt.Errorf("unsupported validation mode: %d", mode)
	}
}

// ExplicitKey reports whether the key comes from a file or the terminal
// rather than the built-in variant key.
func (c *Config) ExplicitKey() bool {
	return c.Key.HexFile != "" || c.PromptForKey()
}

func (c *Config) PromptForKey() bool {
	return c.Key.Prompt != nil && *c.Key.Prompt
}

// VariantValue returns the parsed key.variant. Call after validation.
func (c *Config) VariantValue() aes.Variant {
	v, _ := aes.ParseVariant(c.Key.Variant)
	return v
}

func (c *Config) validateKey() error {
	if strings.TrimSpace(c.Key.Variant) == "" {
		return fmt.Errorf("config.key.variant is required")
	}
	if _, err := aes.ParseVariant(c.Key.Variant); err != nil {
		return fmt.Errorf("config.key.variant: %w", err)
	}
	if c.Key.HexFile != "" && c.PromptForKey() {
		return fmt.Errorf("config.key.hex_file and config.key.prompt are mutually exclusive")
	}
	if c.Key.HexFile != "" {
		if err := validateReadableFile(c.Key.HexFile, "config.key.hex_file"); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateCipher() error {
	switch strings.ToLower(strings.TrimSpace(c.Cipher.Mode)) {
	case "":
		return fmt.Errorf("config.cipher.mode is required")
	case ModeECB, ModeCBC, ModeCMAC:
		c.Cipher.Mode = strings.ToLower(strings.TrimSpace(c.Cipher.Mode))
	default:
		return fmt.Errorf("config.cipher.mode must be one of ecb, cbc, cmac")
	}

	if c.Cipher.IVHex != "" {
		if c.Cipher.Mode != ModeCBC {
			return fmt.Errorf("config.cipher.iv_hex is only valid with mode cbc")
		}
		if len(strings.TrimSpace(c.Cipher.IVHex)) != 2*aes.BlockSize {
			return fmt.Errorf("config.cipher.iv_hex must be %d hex chars", 2*aes.BlockSize)
		}
	}

	if c.Cipher.Padding == nil {
		if c.Cipher.Mode != ModeCMAC {
			return fmt.Errorf("config.cipher.padding is required")
		}
	} else if c.Cipher.Mode == ModeCMAC {
		return fmt.Errorf("config.cipher.padding is not used with mode cmac")
	}
	return nil
}

func (c *Config) resolvePaths(configPath string) {
	configDir := filepath.Dir(configPath)
	c.Key.HexFile = resolvePath(configDir, c.Key.HexFile)
}

func resolvePath(baseDir, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Clean(filepath.Join(baseDir, trimmed))
}

func validateReadableFile(path string, field string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s must point to a file, got directory", field)
	}
	return nil
}
