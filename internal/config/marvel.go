package config

import "time"

type Marvel struct {
	BaseURL     string        `env:"MARVEL_BASE_URL" envDefault:"https://gateway.marvel.com"`
	PublicKeys  []string      `env:"MARVEL_PUBLIC_KEYS,notEmpty" envSeparator:","`
	PrivateKeys []string      `env:"MARVEL_PRIVATE_KEYS,notEmpty" envSeparator:"," json:"-"`
	KeyMaxUsage int           `env:"MARVEL_KEY_MAX_USAGE" envDefault:"3000"`
	CacheTTL    time.Duration `env:"MARVEL_CACHE_TTL" envDefault:"1h"`
	Timeout     time.Duration `env:"MARVEL_TIMEOUT" envDefault:"10s"`
}
