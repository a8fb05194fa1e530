package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the maintenance web service the CLI talks to unless told
// otherwise.
const DefaultBaseURL = "http://localhost:8082/MantenimientoWebApp-1.0-SNAPSHOT/ws/"

// Config holds the resourcectl configuration loaded from the environment and
// an optional .env file.
type Config struct {
	BaseURL  string `mapstructure:"resource_base_url"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from envFile and the environment. A missing
// envFile is not an error.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "load %s", envFile)
	}

	v := viper.New()
	v.SetDefault("resource_base_url", DefaultBaseURL)
	v.SetDefault("log_level", "warn")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("resource_base_url can not be blank")
	}
	return &cfg, nil
}

// Logger builds a text logger writing at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l, nil
}
