package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	StateStoreMemory = "memory"
	StateStoreRedis  = "redis"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP    HTTPConfig    `yaml:"http"`
	Site    SiteConfig    `yaml:"site"`
	Catalog CatalogConfig `yaml:"catalog"`
	State   StateConfig   `yaml:"state"`
	Redis   RedisConf     `yaml:"redis"`
}

type HTTPConfig struct {
	Host          string        `yaml:"host"`
	Port          string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
}

type SiteConfig struct {
	BasePath  string `yaml:"base_path" env:"BLUEARC_BASE_PATH"` // Например "/Blue-arc"
	PublicDir string `yaml:"public_dir" env:"BLUEARC_PUBLIC_DIR" env-default:"./public"`
}

type CatalogConfig struct {
	Source string `yaml:"source" env:"CATALOG_SOURCE" env-default:"file"`
	Path   string `yaml:"path" env:"CATALOG_PATH" env-default:"./config/catalog.yaml"`
	DSN    string `yaml:"dsn" env:"CATALOG_DSN"`

	// Seed перезаписывает таблицы postgres содержимым файла Path при старте
	Seed bool `yaml:"seed" env:"CATALOG_SEED"`
}

type StateConfig struct {
	Store           string        `yaml:"store" env:"STATE_STORE" env-default:"memory"`
	TTL             time.Duration `yaml:"ttl" env-default:"24h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"10m"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

func MustLoad() *Config {
	// .env необязателен: переменные окружения процесса имеют приоритет
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadPath(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &Error{Msg: "config file does not exist: " + configPath}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &Error{Msg: "cannot read config: " + err.Error()}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return &Error{Msg: "catalog.path is required for file source"}
		}
	case CatalogSourcePostgres:
		if c.Catalog.DSN == "" {
			return &Error{Msg: "catalog.dsn is required for postgres source"}
		}
	default:
		return &Error{Msg: "unknown catalog.source: " + c.Catalog.Source}
	}

	switch c.State.Store {
	case StateStoreMemory:
	case StateStoreRedis:
		if c.Redis.RedisAddr == "" {
			return &Error{Msg: "redis.redis_addr is required for redis state store"}
		}
	default:
		return &Error{Msg: "unknown state.store: " + c.State.Store}
	}

	return nil
}

type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
