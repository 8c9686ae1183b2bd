package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Prefix of every environment variable read by Parse.
const Prefix = "FIELDGEN_"

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	HTTP   HTTP   `envPrefix:"HTTP_"`
	Theme  Theme  `envPrefix:"THEME_"`
}

// Load reads the named dotenv files, then parses the environment. Without
// names the working directory's .env is loaded when present.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(err)
		}
		return Parse()
	}
	if err := godotenv.Load(files...); err != nil {
		return nil, errors.Wrapf(err, "could not load dotenv files %v", files)
	}
	return Parse()
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
