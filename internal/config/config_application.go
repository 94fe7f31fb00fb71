package config

// Mode represents the launch mode selected from the ENV variable
type Mode string

const (
	ModeDev  Mode = "dev"
	ModeProd Mode = "prod"
)

// IsDevelopment returns true if the mode is development
func (m Mode) IsDevelopment() bool {
	return m == ModeDev
}

// IsProduction returns true if the mode is production
func (m Mode) IsProduction() bool {
	return m == ModeProd
}

// ApplicationConfig holds the deployment mode selector
type ApplicationConfig struct {
	// Env carries the raw ENV value so it can be echoed verbatim,
	// including when unset.
	Env string `env:"ENV"`
}

// Mode derives the launch mode from the ENV value. The match is an exact
// string comparison against "dev"; any other value, including empty,
// selects production. No case folding or trimming is applied.
func (c *ApplicationConfig) Mode() Mode {
	if c.Env == "dev" {
		return ModeDev
	}
	return ModeProd
}
