package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	BNIClientID   string `env:"BNI_CLIENT_ID"`
	BNIClientKey  string `env:"BNI_CLIENT_KEY"`
	BNIServerURL  string `env:"BNI_SERVER_URL"`
}

// LoadConfig собирает конфигурацию из переменных окружения и флагов (env приоритетнее).
// Отсутствие реквизитов шлюза или DSN — фатальная ошибка: без них любой запуск
// гарантированно положит каждую заявку в ERROR, поэтому останавливаемся на старте.
func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func validate(conf *Config) error {
	if conf.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if conf.BNIClientID == "" || conf.BNIClientKey == "" {
		return errors.New("BNI client credentials are not set")
	}
	if conf.BNIServerURL == "" {
		return errors.New("BNI server URL is not set")
	}
	return nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.BNIClientID, "client-id", "", "BNI e-collection client id")
	flag.StringVar(&flagConfig.BNIClientKey, "client-key", "", "BNI e-collection client key")
	flag.StringVar(&flagConfig.BNIServerURL, "server-url", "", "BNI e-collection endpoint URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		BNIClientID:   defaultIfBlank(envConfig.BNIClientID, flagsConfig.BNIClientID),
		BNIClientKey:  defaultIfBlank(envConfig.BNIClientKey, flagsConfig.BNIClientKey),
		BNIServerURL:  defaultIfBlank(envConfig.BNIServerURL, flagsConfig.BNIServerURL),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
