package main

import (
	"context"

	"github.com/sethvargo/go-envconfig"
	"github.com/wansing/sealtag/markdown"
)

type Config struct {
	Listen   string `env:"LISTEN, default=127.0.0.1:8080"`
	Secret   string `env:"SECRET"`
	Dir      string `env:"DIR, default=."`
	Markdown string `env:"MARKDOWN, default=commonmark"`
	Sanitize bool   `env:"SANITIZE, default=false"`
}

func LoadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Site returns the converters which content and tags share.
func (cfg *Config) Site() (markdown.Converters, error) {
	conv, err := markdown.New(cfg.Markdown)
	if err != nil {
		return nil, err
	}
	if cfg.Sanitize {
		conv = markdown.Sanitized(conv)
	}
	return markdown.Converters{markdown.Format: conv}, nil
}
