package service

import "campushub/auth/microsoft"

type Config struct {
	Token         string           `toml:"token"`
	Expiration    string           `toml:"expiration"`
	AllowedDomain string           `toml:"allowed_domain"`
	Microsoft     microsoft.Config `toml:"microsoft"`
}
