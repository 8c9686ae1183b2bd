package config

type Theme struct {
	Name     string `env:"NAME" envDefault:"default"`
	Variant  string `env:"VARIANT"`
	Manifest string `env:"MANIFEST,expand"`
}
