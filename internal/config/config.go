package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"campusBack/internal/recommend"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
	Recommend recommend.Weights `yaml:"recommend"`
}

func LoadConfig() Config {
	var cfg Config
	cfg.Recommend = recommend.DefaultWeights()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if cfg.Auth.SigningKey == "" {
		cfg.Auth.SigningKey = os.Getenv("JWT_SECRET")
	}
	return cfg
}
