package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultServerName      = "scramblerd"
	DefaultServerAddr      = ":9300"
	DefaultMaxProgramLines = 4096
)

// ServerConfig configures the scramble HTTP service.
type ServerConfig struct {
	Name            string   `toml:"name"`
	Addr            string   `toml:"addr"`
	CorsOrigins     []string `toml:"cors_origins"`
	StrictInverse   bool     `toml:"strict_inverse"`
	MaxProgramLines int      `toml:"max_program_lines"`
}

// DefaultServerConfig returns the config used when no file is given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:            DefaultServerName,
		Addr:            DefaultServerAddr,
		MaxProgramLines: DefaultMaxProgramLines,
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = DefaultServerName
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultServerAddr
	}
	if cfg.MaxProgramLines == 0 {
		cfg.MaxProgramLines = DefaultMaxProgramLines
	}
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.MaxProgramLines < 0 {
		return fmt.Errorf("server config max_program_lines must be positive")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}
