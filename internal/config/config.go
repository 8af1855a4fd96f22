package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// Chaves aceitas no arquivo de configuração e nas variáveis META_ADS_*
const (
	KeyAccessToken  = "access_token"
	KeyAccountID    = "account_id"
	KeyOutputFormat = "output_format"
	KeyAPIVersion   = "api_version"
	KeyVerbose      = "verbose"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
	KeyBaseURL      = "base_url"
	KeyHTTPTimeout  = "http_timeout"

	EnvPrefix = "META_ADS"
	// EnvConfigPath aponta para um arquivo de configuração alternativo
	EnvConfigPath = "META_ADS_CONFIG"
)

const (
	OutputJSON  = "json"
	OutputTable = "table"

	DefaultHTTPTimeout = 60 * time.Second
)

type Config struct {
	App  App    `mapstructure:",squash"`
	Meta Meta   `mapstructure:",squash"`
	Path string `mapstructure:"-"`
}

type App struct {
	OutputFormat string `mapstructure:"output_format"`
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
}

type Meta struct {
	BaseURL     string `mapstructure:"base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"api_version"`
	AccessToken string `mapstructure:"access_token"`
	AccountID   string `mapstructure:"account_id"`

	// HTTPTimeout aceita durações como "30s" ou "2m"
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Overrides são os valores vindos de flags, que têm precedência sobre env, arquivo e padrões
type Overrides struct {
	AccessToken  string
	AccountID    string
	OutputFormat string
	Verbose      *bool
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAccessToken, "")
	v.SetDefault(KeyAccountID, "")
	v.SetDefault(KeyOutputFormat, OutputJSON)
	v.SetDefault(KeyAPIVersion, "v22.0")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyBaseURL, "https://graph.facebook.com")
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
}

// NewConfig resolve a configuração efetiva: flag > env > arquivo > padrão
func NewConfig(store *Store, overrides Overrides) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	if store != nil && store.Exists() {
		v.SetConfigFile(store.Path())
		if err := v.ReadInConfig(); err != nil {
			return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidConfig, "").WithDetail("path", store.Path())
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidConfig, "")
	}

	if store != nil {
		cfg.Path = store.Path()
	}

	applyOverrides(cfg, overrides)

	if err := ValidateValue(KeyOutputFormat, cfg.App.OutputFormat); err != nil {
		return nil, err
	}
	if cfg.Meta.HTTPTimeout <= 0 {
		return nil, apiErrors.Newf(apiErrors.ErrInvalidConfig, "Invalid http_timeout %s: must be a positive duration like 30s.", cfg.Meta.HTTPTimeout)
	}

	cfg.Meta.BaseURL = strings.TrimRight(cfg.Meta.BaseURL, "/")
	cfg.Meta.URL = fmt.Sprintf("%s/%s", cfg.Meta.BaseURL, cfg.Meta.Version)

	return cfg, nil
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.AccessToken != "" {
		cfg.Meta.AccessToken = overrides.AccessToken
	}
	if overrides.AccountID != "" {
		cfg.Meta.AccountID = overrides.AccountID
	}
	if overrides.OutputFormat != "" {
		cfg.App.OutputFormat = overrides.OutputFormat
	}
	if overrides.Verbose != nil {
		cfg.App.Verbose = *overrides.Verbose
	}
}

// DefaultPath retorna $META_ADS_CONFIG ou $XDG_CONFIG_HOME/meta-ads/config.yaml
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", apiErrors.Wrap(err, apiErrors.ErrConfigNotFound, "Unable to resolve the home directory.")
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, "meta-ads", "config.yaml"), nil
}

// Função auxiliar para carregar um .env opcional do diretório atual.
// Variáveis já definidas no ambiente não são sobrescritas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	location := filepath.Join(cwd, ".env")
	if err := godotenv.Load(location); err == nil {
		logrus.Debug("Arquivo .env carregado de: ", location)
	}
}
