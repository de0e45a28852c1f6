package config

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Syrah0/swiftSet/core/key"
)

const (
	// Name is the base name of the configuration file, histo.yaml.
	// EnvPrefix prefixes the environment variables, e.g., HISTO_KEY.
	Name      = "histo"
	EnvPrefix = "HISTO"
)

// Output formats of the command-line tool.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config contains the settings shared by all histo subcommands.
type Config struct {
	// Key is the textual key source, as accepted by key.ParseSource,
	// e.g., "field:Name".  Empty means the default key.
	Key string `json:"key" mapstructure:"key"`

	// Wrap boxes every loaded value with key.Wrap, so that 1 and "1"
	// are counted apart.
	Wrap bool `json:"wrap" mapstructure:"wrap"`

	// Normalize, if positive, rescales counted histograms to sum to
	// Normalize.
	Normalize int `json:"normalize" mapstructure:"normalize"`

	Format string `json:"format" mapstructure:"format"`
}

func Default() *Config {
	return &Config{Format: FormatText}
}

func (c *Config) Validate() error {
	if _, e := c.Source(); e != nil {
		return e
	}
	if c.Normalize < 0 {
		return errors.Errorf("c.Normalize must not be negative, got %d", c.Normalize)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return errors.Errorf("c.Format must be %q or %q, got %q",
			FormatText, FormatJSON, c.Format)
	}
	return nil
}

// Source parses c.Key.
func (c *Config) Source() (key.Source[any], error) {
	s, e := key.ParseSource[any](c.Key)
	if e != nil {
		return s, errors.Wrap(e, "c.Key")
	}
	return s, nil
}

// Encode returns the JSON-encoded Config, which can be used as the
// value of the flag registered by RegisterAsFlag.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if e := json.NewEncoder(&buf).Encode(c); e != nil {
		return "", errors.Wrap(e, "JSON encoding failed")
	}
	return strings.TrimSpace(buf.String()), nil
}

// String is required by interface pflag.Value.
func (c *Config) String() string {
	if b, e := json.MarshalIndent(c, "", "  "); e == nil {
		return string(b)
	}
	return ""
}

// Set is required by interface pflag.Value.  It decodes a JSON
// encoded Config on top of c.
func (c *Config) Set(value string) error {
	if e := json.NewDecoder(strings.NewReader(value)).Decode(c); e != nil {
		return errors.Wrap(e, "Error decoding JSON")
	}
	return nil
}

// Type is required by interface pflag.Value.
func (c *Config) Type() string {
	return "json"
}

// RegisterAsFlag registers a flag with name flagName on flags, which
// accepts a JSON encoded Config object as the value.
func (c *Config) RegisterAsFlag(flags *pflag.FlagSet, flagName string) {
	flags.Var(c, flagName, "JSON encoded configuration")
}

// New returns a viper instance looking for histo.yaml in dir (or the
// working directory if dir is empty) and for HISTO_* environment
// variables.
func New(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	if len(dir) > 0 {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("key", d.Key)
	v.SetDefault("wrap", d.Wrap)
	v.SetDefault("normalize", d.Normalize)
	v.SetDefault("format", d.Format)
	return v
}

// Load reads the configuration file known to v, if any, and returns
// the validated effective Config.  Flags bound to v override the
// environment, which overrides the file.
func Load(v *viper.Viper) (*Config, error) {
	if e := v.ReadInConfig(); e != nil {
		if _, ok := e.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(e, "Cannot read config file")
		}
	}

	c := new(Config)
	if e := v.Unmarshal(c); e != nil {
		return nil, errors.Wrap(e, "Parse config")
	}
	if e := c.Validate(); e != nil {
		return nil, errors.Wrap(e, "Invalid configuration")
	}
	return c, nil
}
