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

// Config holds all runtime configuration for Markboard.
type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	Build    string
	AppName  string

	RollbarToken string

	// SearchDebounce is the quiet period applied to search-input changes
	// before the roster view is re-rendered.
	SearchDebounce time.Duration

	Server struct {
		Addr            string
		ShutdownTimeout time.Duration
	}

	Chart struct {
		Width  int
		Height int
		Margin int
	}
}

// NewConfig loads configuration from defaults, an optional
// `config/.env.<env>` file and environment variables prefixed with the
// current ENV name (eg. DEV_DEBUG).
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Markboard")
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("searchDebounce", 150*time.Millisecond)
	conf.SetDefault("chartWidth", 420)
	conf.SetDefault("chartHeight", 300)
	conf.SetDefault("chartMargin", 40)
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	cfg := &Config{
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		Env:            env,
		Build:          conf.GetString("build"),
		AppName:        conf.GetString("appName"),
		RollbarToken:   conf.GetString("rollbarToken"),
		SearchDebounce: conf.GetDuration("searchDebounce"),
	}
	cfg.Server.Addr = conf.GetString("serverAddr")
	cfg.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	cfg.Chart.Width = conf.GetInt("chartWidth")
	cfg.Chart.Height = conf.GetInt("chartHeight")
	cfg.Chart.Margin = conf.GetInt("chartMargin")
	return cfg
}
