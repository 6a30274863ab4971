package config

import "os"

type Config struct {
	Addr string
}

func Load() Config {
	addr := os.Getenv("USER_DASH_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	return Config{
		Addr: addr,
	}
}
