package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

func NewServerConfig() *ServerConfig {
	cfg := &ServerConfig{Port: os.Getenv("PORT"), CORSOrigins: []string{"*"}}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
	return cfg
}

func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}
