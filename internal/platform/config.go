package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notebot/pkg/adapters/fs"
	"github.com/aretw0/notebot/pkg/adapters/telegram"
)

// ConfigName is the base name of the optional config file in the data directory.
const ConfigName = "notebot"

// Config is the file/env configuration of the bot.
type Config struct {
	Dir          string `yaml:"dir" mapstructure:"-"`
	NotesFile    string `yaml:"notes_file" mapstructure:"notes_file"`
	ExportFile   string `yaml:"export_file" mapstructure:"export_file"`
	TokenFile    string `yaml:"token_file" mapstructure:"token_file"`
	PollTimeout  int    `yaml:"poll_timeout" mapstructure:"poll_timeout"`
	WatchPattern string `yaml:"watch_pattern" mapstructure:"watch_pattern"`
	ReadOnly     bool   `yaml:"read_only" mapstructure:"read_only"`

	// Token is resolved separately and never serialized.
	Token string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Dir:         ".",
		NotesFile:   fs.DefaultNotesFile,
		ExportFile:  fs.DefaultExportFile,
		TokenFile:   DefaultTokenFile,
		PollTimeout: telegram.DefaultPollTimeout,
	}
}

func newViper(dir string) *viper.Viper {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("notes_file", def.NotesFile)
	v.SetDefault("export_file", def.ExportFile)
	v.SetDefault("token_file", def.TokenFile)
	v.SetDefault("poll_timeout", def.PollTimeout)
	v.SetDefault("watch_pattern", def.WatchPattern)
	v.SetDefault("read_only", def.ReadOnly)

	// NOTEBOT_NOTES_FILE, NOTEBOT_POLL_TIMEOUT, ...
	v.SetEnvPrefix("NOTEBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads notebot.yaml from dir (if present) and NOTEBOT_* env vars.
// The token is not resolved; see ResolveToken.
func LoadConfig(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}
	v := newViper(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Dir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.NotesFile == "" {
		return fmt.Errorf("config: notes_file is required")
	}
	if c.ExportFile == "" {
		return fmt.Errorf("config: export_file is required")
	}
	if resolve(c.Dir, c.NotesFile) == resolve(c.Dir, c.ExportFile) {
		return fmt.Errorf("config: notes_file and export_file must differ")
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("config: poll_timeout must not be negative")
	}
	return nil
}

// Options converts the configuration to factory options.
func (c *Config) Options() []Option {
	return []Option{
		WithNotesFile(c.NotesFile),
		WithExportFile(c.ExportFile),
		WithReadOnly(c.ReadOnly),
	}
}

// NotesPath returns the resolved path of the note document.
func (c *Config) NotesPath() string {
	return resolve(c.Dir, c.NotesFile)
}

// YAML renders the effective configuration. The token is reported as set or
// unset, never printed.
func (c *Config) YAML() ([]byte, error) {
	out := struct {
		Config `yaml:",inline"`
		Token  string `yaml:"token"`
	}{Config: *c, Token: "<unset>"}
	if c.Token != "" {
		out.Token = "<set>"
	}
	out.Dir = filepath.Clean(c.Dir)
	return yaml.Marshal(out)
}
