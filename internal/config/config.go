package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `env:"ENV" env-default:"dev"`
	Server   HTTPServer     `env-prefix:"SERVER_"`
	Postgres PostgresConfig `env-prefix:"PG_"`
	Redis    RedisConfig    `env-prefix:"REDIS_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
	Judging  JudgingConfig  `env-prefix:"JUDGING_"`
}

type HTTPServer struct {
	Port    string        `env:"PORT" env-default:"8080"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"5s"`
}

type PostgresConfig struct {
	Host     string `env:"HOST" env-default:"localhost"`
	Port     string `env:"PORT" env-default:"5432"`
	User     string `env:"USER" env-default:"postgres"`
	Password string `env:"PASSWORD" env-default:"postgres"`
	DbName   string `env:"DBNAME" env-default:"hackathon_db"`
	SslMode  string `env:"SSLMODE" env-default:"disable"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" env-default:"localhost:6379"`
	Password string `env:"PASSWORD" env-default:""`
	DB       int    `env:"DB" env-default:"0"`
}

type AuthConfig struct {
	// JWTSecret signs session tokens; there is no default on purpose.
	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	// OperatorWhitelist lists emails allowed through the admin login.
	OperatorWhitelist []string `env:"OPERATOR_WHITELIST" env-separator:","`
}

type JudgingConfig struct {
	// MaxScore is the per-criterion upper bound. Historically 10,
	// tightened to 7 for later editions.
	MaxScore int `env:"MAX_SCORE" env-default:"10"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}
