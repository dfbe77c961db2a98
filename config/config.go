package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Probe backends supported for metadata extraction.
const (
	ProbeFFmpeg = "ffmpeg"
	ProbeOpenCV = "opencv"
)

// Config holds the configuration for the retrovault application
type Config struct {
	ProbeBackend        string `json:"probe_backend"`         // "ffmpeg" or "opencv"
	ThumbnailDir        string `json:"thumbnail_dir"`         // where generated thumbnails are written
	ThumbnailCacheBytes int64  `json:"thumbnail_cache_bytes"` // in-memory thumbnail cache budget
	UploadBufferSize    int    `json:"upload_buffer_size"`    // pending upload jobs before Queue rejects
	DrainTimeoutSeconds int    `json:"drain_timeout_seconds"` // how long to finish pending uploads on shutdown
	LogPath             string `json:"log_path"`
	LogLevel            string `json:"log_level"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {

	thumbDir := "thumbnails"

	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		dir := filepath.Join(homeDir, "retrovault")

		if err := os.MkdirAll(dir, 0755); err == nil {
			thumbDir = filepath.Join(dir, "thumbnails")
		}
	}

	return &Config{
		ProbeBackend:        ProbeFFmpeg,
		ThumbnailDir:        thumbDir,
		ThumbnailCacheBytes: 32 * 1024 * 1024,
		UploadBufferSize:    16,
		DrainTimeoutSeconds: 30,
		LogPath:             "logs",
		LogLevel:            "info",
	}
}

// LoadConfig loads the configuration from a JSON file. A missing file is not
// an error; defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ProbeBackend != ProbeFFmpeg && c.ProbeBackend != ProbeOpenCV {
		return fmt.Errorf("unknown probe backend: %q", c.ProbeBackend)
	}
	if c.UploadBufferSize <= 0 {
		return fmt.Errorf("invalid upload buffer size: %d", c.UploadBufferSize)
	}
	if c.DrainTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid drain timeout: %d", c.DrainTimeoutSeconds)
	}
	return nil
}

// SaveConfig saves the configuration to a JSON file
func (c *Config) SaveConfig(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config file: %w", err)
	}

	return nil
}

// Overrides holds optional replacement values, typically from command-line
// flags. Zero values mean "keep the configured value".
type Overrides struct {
	ProbeBackend *string
	ThumbnailDir *string
	LogPath      *string
	LogLevel     *string
}

// Override applies the non-empty override values to the config.
func (c *Config) Override(o Overrides) {
	if o.ProbeBackend != nil && *o.ProbeBackend != "" {
		c.ProbeBackend = *o.ProbeBackend
	}
	if o.ThumbnailDir != nil && *o.ThumbnailDir != "" {
		c.ThumbnailDir = *o.ThumbnailDir
	}
	if o.LogPath != nil && *o.LogPath != "" {
		c.LogPath = *o.LogPath
	}
	if o.LogLevel != nil && *o.LogLevel != "" {
		c.LogLevel = *o.LogLevel
	}
}
