package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// DirName is the config directory under the user's home.
const DirName = ".lc"

// DefaultBaseURL is the production judge.
const DefaultBaseURL = "https://leetcode.com"

// DefaultTestcaseFile receives the example testcases when none are given.
const DefaultTestcaseFile = "testcase.txt"

// EnvPrefix is prepended to every environment override, e.g. LC_COOKIE.
const EnvPrefix = "LC"

type Config struct {
	Cookie       string        `json:"cookie" mapstructure:"cookie"`
	BaseURL      string        `json:"base_url" mapstructure:"base_url"`
	LogLevel     string        `json:"log_level" mapstructure:"log_level"`
	LogFormat    string        `json:"log_format" mapstructure:"log_format"`
	PollTimeout  time.Duration `json:"poll_timeout" mapstructure:"poll_timeout"`
	TestcaseFile string        `json:"testcase_file" mapstructure:"testcase_file"`
}

var configDir string

// Init points viper at ~/.lc/config.json and loads a .env from the working
// directory if there is one.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return lcerrors.Wrap(err, lcerrors.Config)
	}
	return InitWithDir(filepath.Join(home, DirName))
}

// InitWithDir is Init with an explicit config directory.
func InitWithDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return lcerrors.Wrap(err, lcerrors.Config)
	}
	configDir = dir

	// a missing .env is the common case
	_ = godotenv.Load()

	viper.Reset()
	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("cookie", "")
	viper.SetDefault("base_url", DefaultBaseURL)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")
	viper.SetDefault("poll_timeout", time.Duration(0))
	viper.SetDefault("testcase_file", DefaultTestcaseFile)
	return nil
}

func Load() (*Config, error) {
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, lcerrors.Wrap(err, lcerrors.Config)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Config)
	}
	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		return lcerrors.Newf(lcerrors.Config, "base_url cannot be empty")
	}
	if cfg.PollTimeout < 0 {
		return lcerrors.Newf(lcerrors.Config, "poll_timeout cannot be negative")
	}
	return nil
}

func (cfg *Config) Save() error {
	viper.Set("cookie", cfg.Cookie)
	viper.Set("base_url", cfg.BaseURL)
	viper.Set("log_level", cfg.LogLevel)
	viper.Set("log_format", cfg.LogFormat)
	viper.Set("poll_timeout", cfg.PollTimeout.String())
	viper.Set("testcase_file", cfg.TestcaseFile)

	// creates if doesn't exist
	err := viper.SafeWriteConfig()
	if err != nil {
		// if file exists, we overwrite
		if err := viper.WriteConfig(); err != nil {
			return lcerrors.Wrap(err, lcerrors.Config)
		}
	}
	return nil
}

// Clear removes the whole config directory.
func Clear() error {
	if configDir == "" {
		return nil
	}
	// per docs: If the path does not exist, RemoveAll returns nil (no error)
	if err := os.RemoveAll(configDir); err != nil {
		return lcerrors.Wrap(err, lcerrors.Config)
	}
	return nil
}
