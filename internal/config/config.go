package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt    = 0.01
	DefaultSteps = 1000
	DefaultTol   = 1e-10
	DefaultTerms = 3
	DefaultGuess = 1.0
)

type Config struct {
	Problem   string         `yaml:"problem"`
	Method    string         `yaml:"method"`
	Dt        float64        `yaml:"dt"`
	Steps     int            `yaml:"steps"`
	Duration  float64        `yaml:"duration"`
	InitState []float64      `yaml:"init_state"`
	Sqrt      SqrtConfig     `yaml:"sqrt"`
	Legendre  LegendreConfig `yaml:"legendre"`
}

type SqrtConfig struct {
	Value float64 `yaml:"value"`
	Guess float64 `yaml:"guess"`
	Terms int     `yaml:"terms"`
	Tol   float64 `yaml:"tol"`
}

type LegendreConfig struct {
	Degree int `yaml:"degree"`
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:   "decay",
		Method:    "rk4",
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		InitState: []float64{1.0},
		Sqrt: SqrtConfig{
			Value: 2.0,
			Guess: DefaultGuess,
			Terms: DefaultTerms,
			Tol:   DefaultTol,
		},
		Legendre: LegendreConfig{
			Degree: 3,
			Points: 500,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
