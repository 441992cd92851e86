package wire

import (
	"os"

	"forms-server/cmd/config"
	"forms-server/internal/infra/cache"
	"forms-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(config config.AppConfig) sql.ORM {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}

	if env == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPosgreDatabase(config.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	if err := db.Up(config.Postgresql.MigrationsPath, config.Postgresql.MigrationReplacements); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(config.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func provideCache(config config.AppConfig) cache.Cache {
	if config.Cache.Backend == "redis" {
		store, err := cache.NewRedis(&cache.RedisConfig{
			Addr:     config.Cache.RedisAddr,
			Password: config.Cache.RedisPassword,
			DB:       config.Cache.RedisDB,
			PoolSize: 10,
		})
		if err != nil {
			panic(err)
		}

		return store
	}

	store, err := cache.New(cache.DefaultConfig())
	if err != nil {
		panic(err)
	}

	return store
}
