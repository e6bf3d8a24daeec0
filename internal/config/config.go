package config

import (
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/defaults"
)

const (
	// ConfigFileName is the preferred configuration file name.
	ConfigFileName = "inputkit.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 4100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultLogLevel is used when log.level is empty.
	DefaultLogLevel = "info"
)

// FileNames are the configuration file names searched for, in order.
// JSON is accepted because it parses as YAML.
var FileNames = []string{ConfigFileName, "inputkit.yml", "inputkit.json"}

// Config is the content of inputkit.yaml.
type Config struct {
	// Defaults are global defaults per kind. The "*" kind applies to all.
	Defaults map[string]map[string]any `yaml:"defaults,omitempty" validate:"dive,keys,input_kind,endkeys"`

	// Themes maps theme name -> kind -> attributes.
	Themes map[string]map[string]map[string]any `yaml:"themes,omitempty"`

	// Theme is the theme applied by the CLI and preview server.
	Theme string `yaml:"theme,omitempty"`

	Preview PreviewConfig `yaml:"preview"`

	Log LogConfig `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"min=0,max=65535"`

	// Watch reloads the page when the config file changes.
	Watch bool `yaml:"watch"`

	// Samples are the elements rendered on the preview page.
	Samples []Sample `yaml:"samples,omitempty" validate:"dive"`

	Metrics MetricsConfig `yaml:"metrics,omitempty"`
}

// MetricsConfig configures the preview server collectors.
type MetricsConfig struct {
	// Namespace prefixes every metric name (default: "inputkit").
	Namespace string `yaml:"namespace,omitempty" validate:"omitempty,metric_name"`

	// Buckets are the render duration histogram buckets in seconds,
	// strictly increasing.
	Buckets []float64 `yaml:"buckets,omitempty" validate:"omitempty,dive,gt=0"`
}

// Sample is one element on the preview page.
type Sample struct {
	Kind   string         `yaml:"kind" validate:"required,input_kind"`
	Label  string         `yaml:"label,omitempty"`
	Attrs  map[string]any `yaml:"attrs,omitempty"`
	Output bool           `yaml:"output,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Pretty bool   `yaml:"pretty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Preview: PreviewConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Watch: true,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Example returns the starter configuration written by "inputkit init".
func Example() *Config {
	cfg := New()
	cfg.Defaults = map[string]map[string]any{
		defaults.Wildcard: {"autocomplete": "off"},
		"range":           {"min": 0, "max": 100},
	}
	cfg.Themes = map[string]map[string]map[string]any{
		"bootstrap": {
			defaults.Wildcard: {"class": "form-control"},
			"checkbox":        {"class": "form-check-input"},
			"radio":           {"class": "form-check-input"},
			"range":           {"class": "form-range"},
			"submit":          {"class": "btn btn-primary"},
		},
	}
	cfg.Theme = "bootstrap"
	cfg.Preview.Samples = []Sample{
		{Kind: "text", Label: "Name", Attrs: map[string]any{"name": "name", "placeholder": "Jane Doe", "aria-describedby": true}},
		{Kind: "email", Label: "Email", Attrs: map[string]any{"name": "email", "required": true}},
		{Kind: "range", Label: "Volume", Attrs: map[string]any{"name": "volume", "value": 40}, Output: true},
		{Kind: "checkbox", Label: "Subscribe", Attrs: map[string]any{"name": "subscribe", "checked": true}},
		{Kind: "submit", Attrs: map[string]any{"value": "Send"}},
	}
	return cfg
}

// Load reads the configuration file in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads, defaults and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigMissing).
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path))
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithLocationFromYAML(path, err).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration as YAML to path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// PreviewAddress returns the host:port the preview server listens on.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// ThemeNames returns the defined theme names, sorted.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the configured defaults into reg and returns the configured
// themes as a provider. The provider is nil when no themes are defined.
func (c *Config) Apply(reg *defaults.Registry) *defaults.MapTheme {
	for kind, attrs := range c.Defaults {
		reg.Set(kind, normalizeAttrs(attrs))
	}
	if len(c.Themes) == 0 {
		return nil
	}
	themes := make(map[string]map[string]map[string]any, len(c.Themes))
	for theme, kinds := range c.Themes {
		themes[theme] = make(map[string]map[string]any, len(kinds))
		for kind, attrs := range kinds {
			themes[theme][kind] = normalizeAttrs(attrs)
		}
	}
	return defaults.NewMapTheme(ConfigFileName, themes)
}

// normalizeAttrs converts YAML sequences of strings into []string so class
// lists render as space separated tokens instead of JSON.
func normalizeAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = normalizeValue(v)
	}
	return out
}

// Attributes returns the sample attributes with YAML string lists converted
// to []string.
func (s Sample) Attributes() map[string]any { return normalizeAttrs(s.Attrs) }

func normalizeValue(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	strs := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return v
		}
		strs = append(strs, s)
	}
	return strs
}

// Exists reports whether a config file exists in dir.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up from startDir to the first directory holding a
// config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigMissing).
				WithDetail("No inputkit.yaml found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration of the enclosing project.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
