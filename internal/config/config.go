// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package config builds the typed application configuration from CLI flags,
// environment variables and an optional TOML file.
package config

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string
	Port        int
	MaxBodySize int // in MB
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type DatabaseConfig struct {
	DSN string
}

type JWTConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Secret      string
	Issuer      string
	Audience    string
	ExpiryHours int
}

func NewFromCLI(cmd *cli.Command) *Config {
	return &Config{
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Database: DatabaseConfig{
			DSN: cmd.String("database-dsn"),
		},
		JWT: JWTConfig{
			Secret:      cmd.String("jwt-secret"),
			Issuer:      cmd.String("jwt-issuer"),
			Audience:    cmd.String("jwt-audience"),
			ExpiryHours: int(cmd.Int("jwt-expiry-hours")),
		},
	}
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("HOST"), toml.TOML("server.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "Port to listen on",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), toml.TOML("server.port", configFile)),
		},
		&cli.IntFlag{
			Name:    "max-body-size",
			Value:   1,
			Usage:   "Maximum request body size in MB",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MAX_BODY_SIZE"), toml.TOML("server.max_body_size", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), toml.TOML("log.level", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_FORMAT"), toml.TOML("log.format", configFile)),
		},
		&cli.StringFlag{
			Name:    "database-dsn",
			Value:   "./data/app.db",
			Usage:   "Database DSN",
			Sources: cli.NewValueSourceChain(cli.EnvVar("DATABASE_DSN"), toml.TOML("database.dsn", configFile)),
		},
		&cli.StringFlag{
			Name:    "jwt-secret",
			Usage:   "HMAC secret for signing access tokens",
			Sources: cli.NewValueSourceChain(cli.EnvVar("JWT_SECRET"), toml.TOML("jwt.secret", configFile)),
		},
		&cli.StringFlag{
			Name:    "jwt-issuer",
			Value:   "todoapp",
			Usage:   "Issuer claim for access tokens",
			Sources: cli.NewValueSourceChain(cli.EnvVar("JWT_ISSUER"), toml.TOML("jwt.issuer", configFile)),
		},
		&cli.StringFlag{
			Name:    "jwt-audience",
			Value:   "todoapp",
			Usage:   "Audience claim for access tokens",
			Sources: cli.NewValueSourceChain(cli.EnvVar("JWT_AUDIENCE"), toml.TOML("jwt.audience", configFile)),
		},
		&cli.IntFlag{
			Name:    "jwt-expiry-hours",
			Value:   72,
			Usage:   "Access token lifetime in hours",
			Sources: cli.NewValueSourceChain(cli.EnvVar("JWT_EXPIRY_HOURS"), toml.TOML("jwt.expiry_hours", configFile)),
		},
	}
}
