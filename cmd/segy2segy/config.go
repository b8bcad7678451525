package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the segy2segy configuration file
// (~/.config/segy2segy/config.yaml). Values act as defaults for flags the
// user did not set; survey crews tend to work in one projection pair for
// weeks at a time.
type Config struct {
	SourceSRS   int    `yaml:"source_srs"`
	TargetSRS   int    `yaml:"target_srs"`
	SourceCoord string `yaml:"source_coord"`
	TargetCoord string `yaml:"target_coord"`
	Suffix      string `yaml:"suffix"`
	OutDir      string `yaml:"out_dir"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "segy2segy", "config.yaml")
}

// applyProjectConfig applies config file defaults to the project command
// variables when the corresponding CLI flag was not explicitly set.
func applyProjectConfig(c *cli.Command, cfg Config) {
	if cfg.SourceSRS != 0 && !c.IsSet("s_srs") {
		sourceSRS = int64(cfg.SourceSRS)
	}
	if cfg.TargetSRS != 0 && !c.IsSet("t_srs") {
		targetSRS = int64(cfg.TargetSRS)
	}
	if cfg.SourceCoord != "" && !c.IsSet("s_coord") {
		sourceCoord = cfg.SourceCoord
	}
	if cfg.TargetCoord != "" && !c.IsSet("t_coord") {
		targetCoord = cfg.TargetCoord
	}
	if cfg.Suffix != "" && !c.IsSet("suffix") {
		suffix = cfg.Suffix
	}
	if cfg.OutDir != "" && !c.IsSet("outdir") {
		outDir = cfg.OutDir
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
