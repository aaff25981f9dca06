package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds Khuvaari's on-disk configuration.
type Config struct {
	// DataDir is the directory holding the export documents.
	DataDir string `toml:"data_dir"`

	// ClassesFile and TeachersFile override the export file names.
	ClassesFile  string `toml:"classes_file"`
	TeachersFile string `toml:"teachers_file"`

	// ListenAddr is the web server bind address.
	ListenAddr string `toml:"listen_addr"`

	// DatabasePath is where `khuvaari export` writes its SQLite file.
	DatabasePath string `toml:"database_path"`

	// RateLimit and RateBurst bound per-client request rates on the
	// web server. Zero RateLimit disables limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		ListenAddr: "127.0.0.1:8080",
		RateLimit:  10,
		RateBurst:  20,
	}
}

// DefaultPath returns ~/.khuvaari/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".khuvaari", "config.toml"), nil
}

// Load reads the configuration at path, layered over the defaults.
// A missing file is not an error; it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save persists the configuration to path, creating the directory as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
