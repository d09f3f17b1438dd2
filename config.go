package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".wirebench.yaml"
	envPrefix      = "WIREBENCH_"
)

type Config struct {
	ExportDirectory string `yaml:"export_directory"`
	CornerHitBox    int    `yaml:"corner_hit_box"`
	SelectionMargin int    `yaml:"selection_margin"`
	IORadius        int    `yaml:"io_radius"`
	NodeColor       string `yaml:"node_color"`
	LogFile         string `yaml:"log_file"`
	StartEditable   bool   `yaml:"start_editable"`
}

// defaultConfig is tuned for terminal cells, where the engine's pixel-sized
// defaults would swallow a whole node.
func defaultConfig() *Config {
	return &Config{
		ExportDirectory: "",
		CornerHitBox:    2,
		SelectionMargin: 1,
		IORadius:        defaultIORadius,
		NodeColor:       "#5f87af",
		StartEditable:   true,
	}
}

// loadConfig reads path, or ~/.wirebench.yaml when path is empty, then
// applies a .env file from the working directory and WIREBENCH_* variables.
// A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	homeDir, _ := os.UserHomeDir()
	if path == "" && homeDir != "" {
		path = filepath.Join(homeDir, configFileName)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.ExportDirectory = expandHome(config.ExportDirectory, homeDir)
	config.LogFile = expandHome(config.LogFile, homeDir)
	config.clamp()
	return config, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("EXPORT_DIRECTORY"); ok {
		c.ExportDirectory = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookupEnv("NODE_COLOR"); ok {
		c.NodeColor = v
	}
	ints := map[string]*int{
		"CORNER_HIT_BOX":   &c.CornerHitBox,
		"SELECTION_MARGIN": &c.SelectionMargin,
		"IO_RADIUS":        &c.IORadius,
	}
	for key, dst := range ints {
		v, ok := lookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = n
	}
	if v, ok := lookupEnv("START_EDITABLE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSTART_EDITABLE: %w", envPrefix, err)
		}
		c.StartEditable = b
	}
	return nil
}

func (c *Config) clamp() {
	if c.CornerHitBox < 0 {
		c.CornerHitBox = 0
	}
	if c.SelectionMargin < 0 {
		c.SelectionMargin = 0
	}
	if c.IORadius < 0 {
		c.IORadius = 0
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	return strings.TrimSpace(v), ok
}

func expandHome(path, homeDir string) string {
	if strings.HasPrefix(path, "~") && homeDir != "" {
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	return path
}

// GetExportPath places filename in the export directory, creating it if
// needed.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
