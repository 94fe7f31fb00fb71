package config

// NotaryConfig holds the notary server credential material.
// The private key is only ever surfaced in development mode.
type NotaryConfig struct {
	PrivateKey string `env:"PRIVATE_KEY_SECP256k1"`
}

// HasPrivateKey returns true if the signing key is configured
func (c *NotaryConfig) HasPrivateKey() bool {
	return c.PrivateKey != ""
}
