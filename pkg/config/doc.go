// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// optional .env files are loaded into the process environment, then the
// environment is parsed into a struct using `env` and `envDefault` tags.
// Each configuration type is parsed once and cached.
//
//	type ServerConfig struct {
//		Addr        string `env:"FACILE_ADDR" envDefault:":8080"`
//		DefaultLang string `env:"FACILE_DEFAULT_LANG" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		log.Fatal(err)
//	}
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// ResetCache clears the cache between tests.
package config
