package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test execution defaults
	if !cfg.Execution.Rv64 {
		t.Error("Expected Rv64=true")
	}
	if cfg.Execution.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Execution.NumberFormat)
	}

	// Test IOMMU defaults
	if cfg.Iommu.BaseAddr != "0x10000000" {
		t.Errorf("Expected BaseAddr=0x10000000, got %s", cfg.Iommu.BaseAddr)
	}
	if cfg.Iommu.WindowSize != 4096 {
		t.Errorf("Expected WindowSize=4096, got %d", cfg.Iommu.WindowSize)
	}

	// Test debugger defaults
	if cfg.Debugger.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Debugger.HistorySize)
	}
	if !cfg.Debugger.ShowRegisters {
		t.Error("Expected ShowRegisters=true")
	}

	// Test API defaults
	if cfg.API.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.API.Port)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestParseAddr(t *testing.T) {
	tests := []struct {
		input     string
		expected  uint64
		shouldErr bool
	}{
		{"0x10000000", 0x10000000, false},
		{"4096", 4096, false},
		{"0x0", 0, false},
		{" 0x20 ", 0x20, false},
		{"zzz", 0, true},
		{"0xgg", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAddr(tt.input)
		if tt.shouldErr {
			if err == nil {
				t.Errorf("ParseAddr(%q) expected error but got none", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAddr(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseAddr(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	// Verify path is not empty
	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	// Verify path ends with config.toml
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		// Should be in .config/riscv-emu or be fallback
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "riscv-emu" && path != "config.toml" {
			t.Errorf("Expected path in riscv-emu directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()

	// Verify path is not empty
	if path == "" {
		t.Error("GetLogPath returned empty string")
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "logs" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		// Should be in .local/share/riscv-emu/logs or be fallback
		if filepath.Base(path) != "logs" {
			t.Errorf("Expected path to end with logs, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create a temporary directory for testing
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	// Create a config with custom values
	cfg := DefaultConfig()
	cfg.Execution.Rv64 = false
	cfg.Execution.EnableTrace = true
	cfg.Iommu.BaseAddr = "0x20000000"
	cfg.Debugger.HistorySize = 500
	cfg.API.Port = 9000

	// Save config
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load config
	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify values match
	if loaded.Execution.Rv64 {
		t.Error("Expected Rv64=false")
	}
	if !loaded.Execution.EnableTrace {
		t.Error("Expected EnableTrace=true")
	}
	if loaded.Iommu.BaseAddr != "0x20000000" {
		t.Errorf("Expected BaseAddr=0x20000000, got %s", loaded.Iommu.BaseAddr)
	}
	if loaded.Debugger.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.Debugger.HistorySize)
	}
	if loaded.API.Port != 9000 {
		t.Errorf("Expected Port=9000, got %d", loaded.API.Port)
	}
}

func TestLoadNonExistent(t *testing.T) {
	// Try to load from a non-existent file
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	// Should return default config without error
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	// Verify we got default config
	if cfg.Iommu.WindowSize != 4096 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	// Create a temporary file with invalid TOML
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[iommu]
window_size = "not a number"  # Invalid: should be uint64
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Should return error
	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iommu.WindowSize = 100 // not page aligned and too small
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for bad window size")
	}

	cfg = DefaultConfig()
	cfg.API.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for bad port")
	}

	cfg = DefaultConfig()
	cfg.Iommu.BaseAddr = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for bad base address")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	// Create a temporary directory
	tempDir := t.TempDir()

	// Try to save to a path with non-existent subdirectories
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Verify directories were created
	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
