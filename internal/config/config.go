// Package config loads ambient overrides for the example CLI
// (cmd/basestation-monitor): the explicit port, VID/PID filter, and baud
// rate a bench setup might need to override. The monitor library itself
// never reads these; spec.md §6 keeps the core free of CLI/env
// dependencies, so this is strictly a convenience for the host
// application, adapted from the teacher's own .env-plus-override loader.
// The example CLI reads only the port (via PortOrDefault); the VID/PID and
// baud values are loaded but nothing in this repository applies them.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BaseStationConfig holds the overridable knobs for connecting to a
// bridge: an explicit port (skips VID/PID enumeration when set), a
// VID/PID filter override, and a baud override for bench testing against
// hardware that doesn't speak 115200.
type BaseStationConfig struct {
	Port string
	VID  uint16
	PID  uint16
	Baud int
}

var (
	baseStationConfig *BaseStationConfig
	configLoaded      bool
)

// LoadBaseStationConfig loads overrides from a discovered .env file, then
// from the environment, caching the result for subsequent calls.
func LoadBaseStationConfig() (*BaseStationConfig, error) {
	if baseStationConfig != nil && configLoaded {
		return baseStationConfig, nil
	}

	cfg := &BaseStationConfig{}

	projectRoot := findProjectRoot()
	envPath := filepath.Join(projectRoot, ".env")

	data, err := os.ReadFile(envPath)
	if err == nil {
		parseEnvFile(string(data), cfg)
	}

	if port := os.Getenv("BASESTATION_PORT"); port != "" {
		cfg.Port = port
	}
	if vid := os.Getenv("BASESTATION_VID"); vid != "" {
		if v, err := strconv.ParseUint(vid, 0, 16); err == nil {
			cfg.VID = uint16(v)
		}
	}
	if pid := os.Getenv("BASESTATION_PID"); pid != "" {
		if v, err := strconv.ParseUint(pid, 0, 16); err == nil {
			cfg.PID = uint16(v)
		}
	}
	if baud := os.Getenv("BASESTATION_BAUD"); baud != "" {
		if v, err := strconv.Atoi(baud); err == nil {
			cfg.Baud = v
		}
	}

	baseStationConfig = cfg
	configLoaded = true
	return cfg, nil
}

func parseEnvFile(content string, cfg *BaseStationConfig) {
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "BASESTATION_PORT":
			cfg.Port = value
		case "BASESTATION_VID":
			if v, err := strconv.ParseUint(value, 0, 16); err == nil {
				cfg.VID = uint16(v)
			}
		case "BASESTATION_PID":
			if v, err := strconv.ParseUint(value, 0, 16); err == nil {
				cfg.PID = uint16(v)
			}
		case "BASESTATION_BAUD":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.Baud = v
			}
		}
	}
}

func findProjectRoot() string {
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, ".env")); err == nil {
		return cwd
	}
	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return cwd
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return cwd
		}
		cwd = parent
	}
}

// PortOrDefault returns the configured explicit port, or "" if none was
// set (meaning the caller should fall back to VID/PID enumeration).
func PortOrDefault() string {
	cfg, err := LoadBaseStationConfig()
	if err != nil {
		return ""
	}
	return cfg.Port
}
