package config

type Spin struct {
	MaxAttempts int     `env:"SPIN_MAX_ATTEMPTS" envDefault:"3"`
	RareChance  float64 `env:"SPIN_RARE_CHANCE" envDefault:"0.05"`
}
