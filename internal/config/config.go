package config

// Config holds all launcher configuration loaded from environment variables
type Config struct {
	Application ApplicationConfig
	Notary      NotaryConfig `envPrefix:"NOTARY_"`
}
