package config

import "time"

type HTTP struct {
	Address         string        `env:"ADDRESS,expand" envDefault:":3003"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Metrics         bool          `env:"METRICS" envDefault:"true"`
}
