package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "largo.yml"

// ConfigEnvVar names an explicit config path.
const ConfigEnvVar = "LARGO_CONFIG"

// ErrConfigNotFound is returned by FindConfig when no config file exists in
// the start directory or any of its parents.
var ErrConfigNotFound = errors.New("largo.yml not found")

// TrailingPolicy decides what a session does with tokens left after the
// first expression on a line.
type TrailingPolicy string

const (
	// TrailingIgnore evaluates the first expression and drops the rest.
	TrailingIgnore TrailingPolicy = "ignore"
	// TrailingEvaluate evaluates every expression and reports the last.
	TrailingEvaluate TrailingPolicy = "evaluate"
	// TrailingReject fails when anything follows the first expression.
	TrailingReject TrailingPolicy = "reject"
)

// IsValid reports whether the policy is recognised.
func (p TrailingPolicy) IsValid() bool {
	switch p {
	case TrailingIgnore, TrailingEvaluate, TrailingReject:
		return true
	default:
		return false
	}
}

// Config holds session and REPL settings.
type Config struct {
	// Path is the file the config was loaded from, empty for defaults.
	Path               string
	Prompt             string
	ContinuationPrompt string
	QuitCommand        string
	// HistoryFile is where the REPL keeps line history; empty disables it.
	HistoryFile    string
	TrailingTokens TrailingPolicy
	Verbose        bool
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Prompt:             "largo> ",
		ContinuationPrompt: "...    ",
		QuitCommand:        "quit",
		HistoryFile:        defaultHistoryFile(),
		TrailingTokens:     TrailingEvaluate,
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".largo_history")
}

type configFile struct {
	Prompt             *string `yaml:"prompt"`
	ContinuationPrompt *string `yaml:"continuation_prompt"`
	QuitCommand        *string `yaml:"quit_command"`
	HistoryFile        *string `yaml:"history_file"`
	TrailingTokens     *string `yaml:"trailing_tokens"`
	Verbose            *bool   `yaml:"verbose"`
}

// LoadConfig parses a YAML config file, filling unset keys with defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", absPath, err)
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.ContinuationPrompt != nil {
		cfg.ContinuationPrompt = *raw.ContinuationPrompt
	}
	if raw.QuitCommand != nil {
		cfg.QuitCommand = strings.TrimSpace(*raw.QuitCommand)
	}
	if raw.HistoryFile != nil {
		cfg.HistoryFile = expandHome(strings.TrimSpace(*raw.HistoryFile))
	}
	if raw.TrailingTokens != nil {
		cfg.TrailingTokens = TrailingPolicy(strings.TrimSpace(*raw.TrailingTokens))
	}
	if raw.Verbose != nil {
		cfg.Verbose = *raw.Verbose
	}
	return cfg
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.QuitCommand == "" {
		errs = multierror.Append(errs, errors.New("quit_command must not be empty"))
	} else if strings.ContainsAny(c.QuitCommand, " \t\r\n") {
		errs = multierror.Append(errs, fmt.Errorf("quit_command %q must be a single word", c.QuitCommand))
	}
	if strings.ContainsAny(c.QuitCommand, "()") {
		errs = multierror.Append(errs, fmt.Errorf("quit_command %q must not contain parentheses", c.QuitCommand))
	}
	if !c.TrailingTokens.IsValid() {
		errs = multierror.Append(errs, fmt.Errorf("trailing_tokens has unsupported value %q (want ignore, evaluate or reject)", c.TrailingTokens))
	}
	if strings.Contains(c.Prompt, "\n") || strings.Contains(c.ContinuationPrompt, "\n") {
		errs = multierror.Append(errs, errors.New("prompts must fit on one line"))
	}
	return errs.ErrorOrNil()
}

// FindConfig walks from start up to the filesystem root looking for
// largo.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// ResolveConfig picks the config for a run: an explicit path first, then
// $LARGO_CONFIG, then the nearest largo.yml above start, then defaults.
func ResolveConfig(explicit, start string) (*Config, error) {
	if path := strings.TrimSpace(explicit); path != "" {
		return LoadConfig(path)
	}
	if path := strings.TrimSpace(os.Getenv(ConfigEnvVar)); path != "" {
		return LoadConfig(path)
	}
	path, err := FindConfig(start)
	switch {
	case err == nil:
		return LoadConfig(path)
	case errors.Is(err, ErrConfigNotFound):
		return DefaultConfig(), nil
	default:
		return nil, err
	}
}
