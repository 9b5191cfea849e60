package config

import (
	_ "embed"
)

var (
	//go:embed default.toml
	defaultTOML []byte
)
