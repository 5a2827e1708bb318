package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the simulator configuration
type Config struct {
	// Execution settings
	Execution struct {
		Rv64         bool   `toml:"rv64"`
		EnableTrace  bool   `toml:"enable_trace"`
		NumberFormat string `toml:"number_format"` // hex, dec, both
	} `toml:"execution"`

	// IOMMU settings
	Iommu struct {
		BaseAddr     string `toml:"base_addr"`    // hex or decimal MMIO base
		WindowSize   uint64 `toml:"window_size"`  // bytes, page aligned
		Capabilities string `toml:"capabilities"` // hex capabilities value
	} `toml:"iommu"`

	// Debugger settings
	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowRegisters bool `toml:"show_registers"`
		ColorOutput   bool `toml:"color_output"`
	} `toml:"debugger"`

	// API server settings
	API struct {
		Port        int  `toml:"port"`
		EnableDebug bool `toml:"enable_debug"`
	} `toml:"api"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Execution defaults
	cfg.Execution.Rv64 = true
	cfg.Execution.EnableTrace = false
	cfg.Execution.NumberFormat = "hex"

	// IOMMU defaults
	cfg.Iommu.BaseAddr = "0x10000000"
	cfg.Iommu.WindowSize = 4096
	cfg.Iommu.Capabilities = "0x0"

	// Debugger defaults
	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowRegisters = true
	cfg.Debugger.ColorOutput = true

	// API defaults
	cfg.API.Port = 8080
	cfg.API.EnableDebug = false

	return cfg
}

// ParseAddr parses a hex (0x prefixed) or decimal address string
func ParseAddr(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// IommuBaseAddr returns the parsed IOMMU MMIO base address
func (c *Config) IommuBaseAddr() (uint64, error) {
	return ParseAddr(c.Iommu.BaseAddr)
}

// IommuCapabilities returns the parsed IOMMU capabilities value
func (c *Config) IommuCapabilities() (uint64, error) {
	return ParseAddr(c.Iommu.Capabilities)
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\riscv-emu\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "riscv-emu")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/riscv-emu/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "riscv-emu")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\riscv-emu\logs
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "riscv-emu", "logs")

	case "darwin", "linux":
		// macOS/Linux: ~/.local/share/riscv-emu/logs
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "riscv-emu", "logs")

	default:
		return "logs"
	}

	// Ensure directory exists
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := c.IommuBaseAddr(); err != nil {
		return fmt.Errorf("invalid iommu base address %q: %w", c.Iommu.BaseAddr, err)
	}
	if _, err := c.IommuCapabilities(); err != nil {
		return fmt.Errorf("invalid iommu capabilities %q: %w", c.Iommu.Capabilities, err)
	}
	if c.Iommu.WindowSize < 1024 {
		return fmt.Errorf("iommu window size %d is below the 1024 byte register file", c.Iommu.WindowSize)
	}
	if c.Iommu.WindowSize%4096 != 0 {
		return fmt.Errorf("iommu window size %d is not page aligned", c.Iommu.WindowSize)
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid API port %d", c.API.Port)
	}
	switch c.Execution.NumberFormat {
	case "hex", "dec", "both":
	default:
		return fmt.Errorf("invalid number format %q", c.Execution.NumberFormat)
	}
	if c.Debugger.HistorySize < 0 {
		return fmt.Errorf("invalid debugger history size %d", c.Debugger.HistorySize)
	}
	return nil
}
