// Initializing common application configuration
package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	App    AppConfig    `mapstructure:"app"`
	Gemini GeminiConfig `mapstructure:"gemini"`
}

type ServerConfig struct {
	AppVersion   string        `mapstructure:"appVersion"`
	Host         string        `mapstructure:"host" validate:"required"`
	Port         string        `mapstructure:"port" validate:"required"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Idle_timeout time.Duration `mapstructure:"idle_timeout"`
	Env          string        `mapstructure:"environment"`
	Mode         string        `mapstructure:"mode"`
}

type AppConfig struct {
	StoragePath   string `mapstructure:"storage_path"`
	TemplatesDir  string `mapstructure:"templates_dir"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

// GeminiConfig holds the remote model credential. It is filled from the
// process environment once at startup, never from the yaml file.
type GeminiConfig struct {
	APIKey string `mapstructure:"-"`
}

var ErrNoAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, err
	}

	// Ключ читается из окружения один раз при старте и дальше передается явно
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if c.Gemini.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	if c.App.StoragePath == "" {
		c.App.StoragePath = "./storage"
	}
	if c.App.TemplatesDir == "" {
		c.App.TemplatesDir = "./internal/web/templates"
	}
	if c.App.MaxUploadSize == 0 {
		c.App.MaxUploadSize = 10 << 20 // 10MB
	}

	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
