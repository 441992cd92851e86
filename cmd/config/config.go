package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("forms_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Server: ServerConfig{
				Addr:           viper.GetString("server.addr"),
				AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			},
			Postgresql: PostgresqlConfig{
				URL:                   viper.GetString("database.url"),
				DSN:                   viper.GetString("database.dsn"),
				MigrationsPath:        viper.GetString("database.migrations_path"),
				MigrationReplacements: viper.GetStringMapString("database.migration_replacements"),
			},
			Cache: CacheConfig{
				Backend:       viper.GetString("cache.backend"),
				RedisAddr:     viper.GetString("cache.redis_addr"),
				RedisPassword: viper.GetString("cache.redis_password"),
				RedisDB:       viper.GetInt("cache.redis_db"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Server     ServerConfig
	Postgresql PostgresqlConfig
	Cache      CacheConfig
}

type GeneralConfig struct {
	LogLevel string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type PostgresqlConfig struct {
	URL                   string
	DSN                   string
	MigrationsPath        string
	MigrationReplacements map[string]string
}

type CacheConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
