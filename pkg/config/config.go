package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mosi-wildcard/pkg/logging"
	"mosi-wildcard/pkg/wildcard"
)

const LOG = "CONFIG"

type config struct {
	CacheCapacity   int      `json:"cacheCapacity" yaml:"cacheCapacity"`
	CaseSensitive   bool     `json:"caseSensitive" yaml:"caseSensitive"`
	LogLevelConsole string   `json:"logLevelConsole" yaml:"logLevelConsole"`
	LogLevelService string   `json:"logLevelService" yaml:"logLevelService"`
	LogLevelFile    string   `json:"logLevelFile" yaml:"logLevelFile"`
	LogFile         string   `json:"logFile,omitempty" yaml:"logFile,omitempty"`
	Include         []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude         []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	IncludeDirs     []string `json:"includeDirs,omitempty" yaml:"includeDirs,omitempty"`
	ExcludeDirs     []string `json:"excludeDirs,omitempty" yaml:"excludeDirs,omitempty"`
}

var cfg config

func init() {
	initDefaults()
}

func CacheCapacity() int {
	return cfg.CacheCapacity
}

func CaseSensitive() bool {
	return cfg.CaseSensitive
}

func LogLevelConsole() int {
	return logging.Level(cfg.LogLevelConsole)
}

func LogLevelService() int {
	return logging.Level(cfg.LogLevelService)
}

func LogLevelFile() int {
	return logging.Level(cfg.LogLevelFile)
}

func LogFile() string {
	return cfg.LogFile
}

func Include() []string {
	return cfg.Include
}

func Exclude() []string {
	return cfg.Exclude
}

func IncludeDirs() []string {
	return cfg.IncludeDirs
}

func ExcludeDirs() []string {
	return cfg.ExcludeDirs
}

func initDefaults() {
	cfg = config{
		CacheCapacity:   wildcard.DefaultCacheCapacity,
		CaseSensitive:   true,
		LogLevelConsole: "INFO",
		LogLevelService: "INFO",
		LogLevelFile:    "SILENT",
		ExcludeDirs:     []string{".git"},
	}
}

func isYaml(fn string) bool {
	ext := strings.ToLower(filepath.Ext(fn))
	return ext == ".yaml" || ext == ".yml"
}

func marshal(fn string) ([]byte, error) {
	if isYaml(fn) {
		return yaml.Marshal(&cfg)
	}
	return json.MarshalIndent(&cfg, "", "\t")
}

func unmarshal(fn string, buf []byte) error {
	if isYaml(fn) {
		return yaml.Unmarshal(buf, &cfg)
	}
	return json.Unmarshal(buf, &cfg)
}

func validate() error {
	if cfg.CacheCapacity <= 0 {
		return fmt.Errorf("cacheCapacity must be positive, got %d", cfg.CacheCapacity)
	}
	for _, patterns := range [][]string{cfg.Include, cfg.Exclude, cfg.IncludeDirs, cfg.ExcludeDirs} {
		for _, p := range patterns {
			if _, err := wildcard.Tokenize(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeConfig(fn string) error {
	buf, err := marshal(fn)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0700); err != nil {
		return err
	}
	return os.WriteFile(fn, buf, 0644)
}

// ReadConfig resets the config to its defaults and overlays fn, which is read
// as YAML for .yaml/.yml files and as JSON otherwise. A missing file is
// created with the defaults.
func ReadConfig(fn string) error {
	initDefaults()
	if fn == "" {
		return nil
	}

	buf, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Info(LOG, "%s not found, creating default", fn)
		return writeConfig(fn)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fn, err)
	}

	if err := unmarshal(fn, buf); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", fn, err)
	}
	if err := validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", fn, err)
	}
	logging.Debug(LOG, "loaded %s", fn)
	return nil
}
