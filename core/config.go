package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds all runtime settings. Values come from defaults, an optional
	// `config/.env.<env>` file and environment variables (prefixed with ENV).
	Config struct {
		AppName  string
		Env      string // DEV (default), TEST, QA, PROD
		Build    string
		Debug    bool
		TestMode bool

		DataDir   string // directory holding the JSON documents
		StaticDir string // public site assets; not served when empty

		Server ServerConfig
		Admin  AdminConfig
		Redis  RedisConfig

		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Addr            string
		SessionTTL      time.Duration
		ShutdownTimeout time.Duration
	}

	// AdminConfig is the single shared admin identity.
	AdminConfig struct {
		Username string
		Password string
	}

	RedisConfig struct {
		Addr     string // session store falls back to in-memory when empty
		Password string
		DB       int
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Revisions")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", true)
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("sessionTTL", 24*time.Hour)
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("dataDir", filepath.Join(Getwd(), "data"))
	conf.SetDefault("staticDir", "")
	conf.SetDefault("adminUsername", "karniella")
	conf.SetDefault("adminPassword", "houedanou")
	conf.SetDefault("redisAddr", "")
	conf.SetDefault("redisPassword", "")
	conf.SetDefault("redisDB", 0)
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:  conf.GetString("appName"),
		Env:      env,
		Build:    conf.GetString("build"),
		Debug:    conf.GetBool("debug"),
		TestMode: env == "TEST",

		DataDir:   conf.GetString("dataDir"),
		StaticDir: conf.GetString("staticDir"),

		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			SessionTTL:      conf.GetDuration("sessionTTL"),
			ShutdownTimeout: conf.GetDuration("shutdownTimeout"),
		},
		Admin: AdminConfig{
			Username: conf.GetString("adminUsername"),
			Password: conf.GetString("adminPassword"),
		},
		Redis: RedisConfig{
			Addr:     conf.GetString("redisAddr"),
			Password: conf.GetString("redisPassword"),
			DB:       conf.GetInt("redisDB"),
		},

		RollbarToken: conf.GetString("rollbarToken"),
	}
}
