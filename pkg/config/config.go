package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "TYPEDRESPONSE"

const (
	EnvAppEnv        = "TYPEDRESPONSE_APP_ENV"
	EnvServiceName   = "TYPEDRESPONSE_SERVICE_NAME"
	EnvLogLevel      = "TYPEDRESPONSE_LOG_LEVEL"
	EnvLogWarnStack  = "TYPEDRESPONSE_LOG_WARN_STACK"
	EnvSuccessStatus = "TYPEDRESPONSE_SUCCESS_STATUS"
	EnvErrorStatus   = "TYPEDRESPONSE_ERROR_STATUS"
	EnvPretty        = "TYPEDRESPONSE_PRETTY"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App  AppConfig
	Demo DemoConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Demo.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TYPEDRESPONSE_APP_ENV" default:"dev"`
	ServiceName  string `envconfig:"TYPEDRESPONSE_SERVICE_NAME" default:"envelope-demo"`
	LogLevel     string `envconfig:"TYPEDRESPONSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TYPEDRESPONSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DemoConfig drives the statuses stamped on the envelopes the demo prints.
type DemoConfig struct {
	SuccessStatus int  `envconfig:"TYPEDRESPONSE_SUCCESS_STATUS" default:"200"`
	ErrorStatus   int  `envconfig:"TYPEDRESPONSE_ERROR_STATUS" default:"500"`
	Pretty        bool `envconfig:"TYPEDRESPONSE_PRETTY" default:"true"`
}

func (d DemoConfig) validate() error {
	for env, status := range map[string]int{
		EnvSuccessStatus: d.SuccessStatus,
		EnvErrorStatus:   d.ErrorStatus,
	} {
		if status < 100 || status > 599 {
			return fmt.Errorf("%s must be a valid HTTP status, got %d", env, status)
		}
	}
	return nil
}
