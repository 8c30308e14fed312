package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config, state and cache directories.
const AppName = "cadence"

// Library sources.
const (
	SourceFolders = "folders"
	SourceDemo    = "demo"
)

type Config struct {
	Library  LibraryConfig  `koanf:"library"`
	Playback PlaybackConfig `koanf:"playback"`
	Log      LogConfig      `koanf:"log"`
}

// LibraryConfig selects where the catalog comes from.
type LibraryConfig struct {
	Source   string   `koanf:"source" default:"folders" validate:"oneof=folders demo"`
	Folders  []string `koanf:"folders"`                                            // unset means ~/Music, empty means demo
	Watch    bool     `koanf:"watch"`                                              // rescan when the folders change
	PageSize int      `koanf:"page_size" default:"200" validate:"gte=1,lte=10000"` // assets per scan page
}

// PlaybackConfig tunes the status loop and seeking.
type PlaybackConfig struct {
	TickInterval time.Duration `koanf:"tick_interval" default:"200ms" validate:"gte=20ms,lte=5s"`
	SeekStep     time.Duration `koanf:"seek_step" default:"5s" validate:"gte=1s,lte=5m"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	File       string `koanf:"file"` // empty means the default state file
	MaxSizeMB  int    `koanf:"max_size_mb" default:"10" validate:"gte=1"`
	MaxBackups int    `koanf:"max_backups" default:"3" validate:"gte=0"`
}

// defaultFolders is used when the config never mentions library.folders.
var defaultFolders = []string{"~/Music"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report config keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	return v
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.Library.Folders = slices.Clone(defaultFolders)
	if err := cfg.finish(); err != nil {
		panic(err) // struct tags are static
	}
	return cfg
}

// Overrides are command-line settings layered over the config files.
// They go through the same validation as file values.
type Overrides struct {
	Folders  []string // non-empty selects the folders source
	Demo     bool
	LogLevel string
}

func (o Overrides) apply(c *Config) {
	if len(o.Folders) > 0 {
		c.Library.Source = SourceFolders
		c.Library.Folders = slices.Clone(o.Folders)
	}
	if o.Demo {
		c.Library.Source = SourceDemo
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}

// Load reads the config files and applies defaults. When path is non-empty
// only that file is read and it must exist; otherwise the standard locations
// are tried in order of priority (last wins) and missing files are skipped.
func Load(path string) (*Config, error) {
	return LoadWith(path, Overrides{})
}

// LoadWith is Load with command-line overrides applied before validation.
func LoadWith(path string, ov Overrides) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("read config %s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if !k.Exists("library.folders") {
		cfg.Library.Folders = slices.Clone(defaultFolders)
	}
	ov.apply(cfg)
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("set config defaults: %w", err)
	}
	c.Library.Source = strings.ToLower(strings.TrimSpace(c.Library.Source))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", describe(err))
	}

	for i, dir := range c.Library.Folders {
		c.Library.Folders[i] = expandPath(dir)
	}
	c.Log.File = expandPath(c.Log.File)
	return nil
}

// describe flattens validator errors into one line per failed key.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			parts[i] = fmt.Sprintf("%s must satisfy %s=%s", key, fe.Tag(), fe.Param())
		} else {
			parts[i] = fmt.Sprintf("%s must satisfy %s", key, fe.Tag())
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/cadence/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// UseDemo reports whether the built-in demo catalog should be used.
func (c *Config) UseDemo() bool {
	return c.Library.Source == SourceDemo || len(c.Library.Folders) == 0
}

// LogFile returns the log file path, defaulting to the XDG state directory.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// CacheDir returns the directory downloaded audio is cached in.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName, "audio")
}
