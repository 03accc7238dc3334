package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultWSDLURL is the production eWAY rebill service description
const DefaultWSDLURL = "https://www.eway.com.au/gateway/rebill/manageRebill.asmx?WSDL"

type AppCfg struct{ Env, Port, LogLevel string }

type EwayCfg struct {
	WSDLURL     string
	CustomerID  string
	Username    string
	Password    string
	Timeout     time.Duration
	WSDLRetries uint64
}

type SecurityCfg struct {
	AdminToken string // bearer token guarding the gateway API
}

type Cfg struct {
	App  AppCfg
	Eway EwayCfg
	Sec  SecurityCfg
}

// Load reads configuration and exits the process on failure
func Load() Cfg {
	cfg, err := LoadE(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// LoadE loads envFile into the process env (if it exists), reads settings
// from the environment and validates the required ones.
func LoadE(envFile string) (Cfg, error) {
	// 1) .env never overrides variables already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Cfg{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	// 2) Read from env via viper
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "sandbox")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EWAY_WSDL_URL", DefaultWSDLURL)
	v.SetDefault("EWAY_TIMEOUT_SEC", 30)
	v.SetDefault("EWAY_WSDL_RETRIES", 0)
	v.SetDefault("ADMIN_TOKEN", "")

	retries := v.GetInt("EWAY_WSDL_RETRIES")
	if retries < 0 {
		retries = 0
	}

	cfg := Cfg{
		App: AppCfg{
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		},
		Eway: EwayCfg{
			WSDLURL:     strings.TrimSpace(v.GetString("EWAY_WSDL_URL")),
			CustomerID:  strings.TrimSpace(v.GetString("EWAY_CUSTOMER_ID")),
			Username:    strings.TrimSpace(v.GetString("EWAY_USERNAME")),
			Password:    v.GetString("EWAY_PASSWORD"),
			Timeout:     time.Duration(v.GetInt("EWAY_TIMEOUT_SEC")) * time.Second,
			WSDLRetries: uint64(retries),
		},
		Sec: SecurityCfg{
			AdminToken: strings.TrimSpace(v.GetString("ADMIN_TOKEN")),
		},
	}

	// 3) Fail fast on required settings
	if cfg.Eway.WSDLURL == "" {
		return Cfg{}, errors.New("EWAY_WSDL_URL is required")
	}
	if cfg.Eway.CustomerID == "" {
		return Cfg{}, errors.New("EWAY_CUSTOMER_ID is required")
	}
	if cfg.Eway.Username == "" {
		return Cfg{}, errors.New("EWAY_USERNAME is required")
	}
	if cfg.Eway.Password == "" {
		return Cfg{}, errors.New("EWAY_PASSWORD is required")
	}

	return cfg, nil
}

// Level maps LOG_LEVEL onto a zerolog level, defaulting to info
func (c AppCfg) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
