package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read from the working directory when EDC_CONFIG is unset
	DefaultFile = "edc.yaml"

	DefaultResizeSize   = "2000x1000>"
	DefaultMD5ChunkSize = 8192
)

type Config struct {
	Tools        Tools  `yaml:"tools"`
	ResizeSize   string `yaml:"resize_size"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	HistoryDB    string `yaml:"history_db"`
	MD5ChunkSize int    `yaml:"md5_chunk_size"`

	// Source is the YAML file the values were read from, if any
	Source string `yaml:"-"`
	// Warnings collects env values that were ignored
	Warnings []string `yaml:"-"`
}

// Tools holds the program names of the external converters
type Tools struct {
	Convert string `yaml:"convert"`
	FFmpeg  string `yaml:"ffmpeg"`
	Oxipng  string `yaml:"oxipng"`
}

func Default() *Config {
	return &Config{
		Tools: Tools{
			Convert: "convert",
			FFmpeg:  "ffmpeg",
			Oxipng:  "oxipng",
		},
		ResizeSize:   DefaultResizeSize,
		LogLevel:     "info",
		MD5ChunkSize: DefaultMD5ChunkSize,
	}
}

// Load builds the configuration from defaults, the optional YAML file and the
// environment, later sources overriding earlier ones.
func Load() (*Config, error) {
	cfg := Default()

	file := os.Getenv("EDC_CONFIG")
	required := file != ""
	if !required {
		file = DefaultFile
	}
	if err := cfg.loadFile(file, required); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.merge(&fileCfg)
	c.Source = path
	return nil
}

// merge copies every value set in other
func (c *Config) merge(other *Config) {
	c.Tools.Convert = pick(other.Tools.Convert, c.Tools.Convert)
	c.Tools.FFmpeg = pick(other.Tools.FFmpeg, c.Tools.FFmpeg)
	c.Tools.Oxipng = pick(other.Tools.Oxipng, c.Tools.Oxipng)
	c.ResizeSize = pick(other.ResizeSize, c.ResizeSize)
	c.LogLevel = pick(other.LogLevel, c.LogLevel)
	c.LogFile = pick(other.LogFile, c.LogFile)
	c.HistoryDB = pick(other.HistoryDB, c.HistoryDB)
	if other.MD5ChunkSize > 0 {
		c.MD5ChunkSize = other.MD5ChunkSize
	}
}

func (c *Config) applyEnv() {
	c.Tools.Convert = getEnv("EDC_CONVERT", c.Tools.Convert)
	c.Tools.FFmpeg = getEnv("EDC_FFMPEG", c.Tools.FFmpeg)
	c.Tools.Oxipng = getEnv("EDC_OXIPNG", c.Tools.Oxipng)
	c.ResizeSize = getEnv("EDC_RESIZE_SIZE", c.ResizeSize)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("EDC_LOG_FILE", c.LogFile)
	c.HistoryDB = getEnv("EDC_HISTORY_DB", c.HistoryDB)
	c.MD5ChunkSize = c.getEnvInt("MD5_CHUNK_SIZE", c.MD5ChunkSize)
}

// HistoryEnabled reports whether runs get recorded
func (c *Config) HistoryEnabled() bool { return c.HistoryDB != "" }

func pick(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func (c *Config) getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring invalid %s=%q, using %d", key, v, def))
		return def
	}
	return i
}
