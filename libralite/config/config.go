package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/skhanzad/libralite/pkg/auth"
	"github.com/skhanzad/libralite/pkg/kafka"
	"github.com/skhanzad/libralite/pkg/logger"
	"github.com/skhanzad/libralite/pkg/postgres"
	"github.com/skhanzad/libralite/pkg/redis"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE" default:"15s"`
}

type Circulation struct {
	HoldShelfRetention time.Duration `envconfig:"HOLD_SHELF_RETENTION" default:"168h"`
	LoginMaxAttempts   int           `envconfig:"LOGIN_MAX_ATTEMPTS" default:"5"`
	LoginWindow        time.Duration `envconfig:"LOGIN_WINDOW" default:"15m"`
}

type Config struct {
	Server      HTTPServer
	Database    postgres.DB
	Kafka       kafka.Config
	Redis       redis.Config
	Auth        auth.Config
	Circulation Circulation
	AdminAPIKey string     `envconfig:"ADMIN_API_KEY" json:"-"`
	Log         logger.Log `json:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once. Options are applied on top
// of the environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func Load(ops ...Option) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	for _, op := range ops {
		op(&config)
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
