package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/sweeper/internal/app"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File mirrors the optional YAML configuration file. Unset keys keep their
// defaults; flags and environment variables override file values.
type File struct {
	Size    *int    `yaml:"size"`
	Mines   *int    `yaml:"mines"`
	Seed    *uint64 `yaml:"seed"`
	Width   *int    `yaml:"width"`
	Height  *int    `yaml:"height"`
	Footer  *bool   `yaml:"footer"`
	Mouse   *bool   `yaml:"mouse"`
	Trace   *bool   `yaml:"trace"`
	LogFile *string `yaml:"log_file"`
}

const (
	envConfigFile = "SWEEPER_CONFIG"
	envSize       = "SWEEPER_SIZE"
	envMines      = "SWEEPER_MINES"
	envSeed       = "SWEEPER_SEED"
	envWidth      = "SWEEPER_WIDTH"
	envHeight     = "SWEEPER_HEIGHT"
	envShowFooter = "SWEEPER_FOOTER"
	envMouse      = "SWEEPER_MOUSE"
	envTrace      = "SWEEPER_TRACE"
	envLogFile    = "SWEEPER_LOG_FILE"
)

const (
	defaultSize    = 10
	defaultMines   = 12
	defaultLogFile = "sweeper.log"
	maxSize        = 40
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFile(configPath(args, env))
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("sweeper", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML configuration file")
	size := fs.Int("size", envOrInt(env, envSize, intOr(file.Size, defaultSize)), "board edge length in cells")
	mines := fs.Int("mines", envOrInt(env, envMines, intOr(file.Mines, defaultMines)), "number of mines per board")
	seed := fs.Uint64("seed", envOrUint(env, envSeed, uintOr(file.Seed, 0)), "random seed for mine placement (0 picks one from the clock)")
	width := fs.Int("width", envOrInt(env, envWidth, intOr(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, intOr(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, boolOr(file.Footer, true)), "show the key help footer")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, boolOr(file.Mouse, true)), "enable mouse input")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, stringOr(file.LogFile, defaultLogFile)), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Size:       *size,
			Mines:      *mines,
			Seed:       *seed,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Mouse:      *mouse,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":  *configFile,
			"size":    strconv.Itoa(*size),
			"mines":   strconv.Itoa(*mines),
			"seed":    strconv.FormatUint(*seed, 10),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"mouse":   strconv.FormatBool(*mouse),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the config file before the full flag parse so file values
// can act as flag defaults.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfigFile, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			path = v
			continue
		}
		if name == "config" && i+1 < len(args) {
			path = args[i+1]
			i++
		}
	}
	return strings.TrimSpace(path)
}

func loadFile(path string) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrUint(env map[string]string, key string, fallback uint64) uint64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func uintOr(v *uint64, fallback uint64) uint64 {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects board and viewport settings the game cannot honour.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Size < 1 || cfg.App.Size > maxSize {
		errs = append(errs, fmt.Errorf("size must be between 1 and %d (got %d)", maxSize, cfg.App.Size))
	}
	if cfg.App.Mines < 0 || cfg.App.Mines >= cfg.App.Size*cfg.App.Size {
		errs = append(errs, fmt.Errorf("mines must be between 0 and %d (got %d)", max(cfg.App.Size*cfg.App.Size-1, 0), cfg.App.Mines))
	}
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	return errors.Join(errs...)
}
