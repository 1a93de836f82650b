// Package config provides configuration loading.
//
// Values are resolved in order: built-in defaults, COURSEDASH_* environment
// variables, the TOML config file, and the environment again so it wins over
// the file. Registered validators then normalize every known key.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "COURSEDASH_"

	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"
)

var (
	config    map[string]string
	configMap map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	validate()
	computeDirs()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	configDir := filepath.Join(xdgConfigHome, "coursedash")
	stateDir := filepath.Join(xdgStateHome, "coursedash")

	setDefault("config_dir", configDir)
	setDefault("state_dir", stateDir)
	setDefault("theme_path", filepath.Join(configDir, "theme"+FileExtTOML))
	setDefault("transition_duration_ms", "240")
	setDefault("transition_frames", "6")
	setDefault("min_width", "60")
	setDefault("min_height", "16")
	setDefault("status_clear_seconds", "4")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// Path returns the config file that Load reads, or an empty string when none
// exists.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return configPath()
}

// FilePath returns where the config file is read from, whether or not it
// exists yet.
func FilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join(config["config_dir"], "config"+FileExtTOML)
}

func configPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	configDir, ok := config["config_dir"]
	if !ok {
		return ""
	}
	p := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// loadFromFile reads configuration from the TOML file, if any.
func loadFromFile() {
	path := configPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}
	if strings.ToLower(filepath.Ext(path)) != FileExtTOML {
		colors.Warning(fmt.Sprintf("ignoring config file %s: only %s is supported", path, FileExtTOML))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a TOML value to its string representation.
func coerceConfigValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
			continue
		}
		config[key] = normalizedValue
	}
}

// computeDirs recomputes derived paths after config is loaded.
func computeDirs() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	// theme_path follows config_dir unless it was set explicitly.
	if config["theme_path"] == configMap["theme_path"] {
		config["theme_path"] = filepath.Join(configDir, "theme"+FileExtTOML)
	}
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// MarshalTOML renders the effective configuration as TOML.
func MarshalTOML() ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()
	typed := make(map[string]any, len(config))
	for k, v := range config {
		typed[k] = valueToInterface(v)
	}
	return toml.Marshal(typed)
}

// WriteSample writes the default configuration to path. Existing files are
// left untouched and reported as an error.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	mu.RLock()
	typed := make(map[string]any, len(configMap))
	for k, v := range configMap {
		typed[k] = valueToInterface(v)
	}
	mu.RUnlock()

	data, err := toml.Marshal(typed)
	if err != nil {
		return fmt.Errorf("marshal sample config: %w", err)
	}
	header := "# coursedash configuration\n# This file is in TOML format.\n# Edit values as needed.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Keys returns every configured key in sorted order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch normalizeBool(val) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Set overrides a single value, bypassing validation. Used by CLI flags.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
		configMap = make(map[string]string)
	}
	config[key] = value
}
