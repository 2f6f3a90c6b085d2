package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/saylorsolutions/conkit/form"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the settings a console application built with this module is usually expected to expose.
type Config struct {
	Help  HelpConfig  `toml:"help" yaml:"help"`
	Form  FormConfig  `toml:"form" yaml:"form"`
	Log   LogConfig   `toml:"log" yaml:"log"`
	Color ColorConfig `toml:"color" yaml:"color"`
}

type HelpConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Flags   []string `toml:"flags" yaml:"flags"`
	AppName string   `toml:"app_name" yaml:"app_name"`
}

type FormConfig struct {
	Confirm bool       `toml:"confirm" yaml:"confirm"`
	Texts   form.Texts `toml:"texts" yaml:"texts"`
}

// LogConfig selects the log level and an optional log file.
// A blank level means info.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

type ColorConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Help: HelpConfig{
			Enabled: true,
			Flags:   []string{"--help", "-h"},
		},
		Form: FormConfig{
			Confirm: true,
			Texts:   form.DefaultTexts(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Color: ColorConfig{
			Enabled: true,
		},
	}
}

// Load reads a configuration file on top of [Default], choosing the format by extension.
// TOML is used for ".toml", and YAML for ".yaml" or ".yml".
// Keys that don't map to a setting are reported as errors.
//
// An empty path returns [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = loadTOML(&cfg, path)
	case ".yaml", ".yml":
		err = loadYAML(&cfg, path)
	default:
		return cfg, fmt.Errorf("%w: '%s'", ErrUnsupported, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to load config from '%s': %w", path, err)
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadYAML(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every problem with the configuration as a single [Problems] error.
func (c Config) Validate() error {
	var problems Problems
	if c.Help.Enabled && len(c.Help.Flags) == 0 {
		problems.Addf("help is enabled, but no help flags are set")
	}
	for _, flag := range c.Help.Flags {
		if !strings.HasPrefix(flag, "-") {
			problems.Addf("help flag '%s' must start with '-'", flag)
		}
	}
	if lvl := strings.TrimSpace(c.Log.Level); len(lvl) > 0 {
		if _, err := log.ParseLevel(lvl); err != nil {
			problems.Addf("log level '%s' is not one of debug, info, warn, error, fatal", lvl)
		}
	}
	texts := map[string]string{
		"required":            c.Form.Texts.Required,
		"select_at_least_one": c.Form.Texts.SelectAtLeastOne,
		"invalid_option":      c.Form.Texts.InvalidOption,
		"could_not_convert":   c.Form.Texts.CouldNotConvert,
		"edit_prompt":         c.Form.Texts.EditPrompt,
		"edit_selector":       c.Form.Texts.EditSelector,
	}
	for _, key := range []string{"required", "select_at_least_one", "invalid_option", "could_not_convert", "edit_prompt", "edit_selector"} {
		if len(strings.TrimSpace(texts[key])) == 0 {
			problems.Addf("form text '%s' is empty", key)
		}
	}
	return problems.Result()
}
