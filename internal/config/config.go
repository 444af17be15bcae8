package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cppinit/cppinit/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyGit           = "git"
	KeyColor         = "color"
	KeyDefaultBranch = "default_branch"
)

type kind int

const (
	kindString kind = iota
	kindBool
)

var knownKeys = map[string]kind{
	KeyGit:           kindBool,
	KeyColor:         kindBool,
	KeyDefaultBranch: kindString,
}

var v = newViper()

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetDefault(KeyGit, false)
	nv.SetDefault(KeyColor, true)
	nv.SetDefault(KeyDefaultBranch, "")
	return nv
}

// Dir returns the path to the config directory (~/.cppinit/).
// CPPINIT_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cppinit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load (re)initializes settings from the config file and environment.
// A missing config file is not an error.
func Load() {
	v = newViper()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	_ = v.ReadInConfig()
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return v.GetBool(key)
}

// Set validates and writes a config key-value pair, then saves the config file.
func Set(key, value string) error {
	k, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}

	var typed any = value
	if k == kindBool {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	// Only what the file already holds plus the new key is written back.
	// Defaults and CPPINIT_* overrides stay out of it.
	configFile := FilePath()
	fv := viper.New()
	fv.SetConfigFile(configFile)
	fv.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := fv.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	fv.Set(key, typed)

	data, err := yaml.Marshal(fv.AllSettings())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return fmt.Errorf("invalid value %q for %s: %s", value, key, strings.Join(issues, "; "))
	}

	if err := fv.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	Load()
	return nil
}
