package config

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// SettableKeys são as chaves aceitas por `config set`; o token só entra via `auth login`
var SettableKeys = []string{KeyAccountID, KeyOutputFormat, KeyAPIVersion, KeyVerbose, KeyLogLevel, KeyLogFile, KeyHTTPTimeout}

var knownKeys = map[string]bool{
	KeyAccessToken:  true,
	KeyAccountID:    true,
	KeyOutputFormat: true,
	KeyAPIVersion:   true,
	KeyVerbose:      true,
	KeyLogLevel:     true,
	KeyLogFile:      true,
	KeyBaseURL:      true,
	KeyHTTPTimeout:  true,
}

// Store é o arquivo de configuração persistido. Apenas valores gravados no arquivo
// passam por aqui; env e padrões ficam a cargo do NewConfig
type Store struct {
	path   string
	exists bool
	values map[string]any
}

// Open carrega o arquivo em path; arquivo inexistente resulta em um Store vazio
func Open(path string) (*Store, error) {
	store := &Store{path: path, values: map[string]any{}}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidConfig, "").WithDetail("path", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidConfig, "").WithDetail("path", path)
	}

	for key, value := range v.AllSettings() {
		if knownKeys[key] {
			store.values[key] = value
		}
	}
	store.exists = true

	return store, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Exists() bool {
	return s.exists
}

// Get retorna o valor gravado no arquivo como texto
func (s *Store) Get(key string) (string, bool) {
	value, ok := s.values[key]
	if !ok {
		return "", false
	}

	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// Set valida e persiste um valor
func (s *Store) Set(key, value string) error {
	if !knownKeys[key] {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Unknown config key: %s", key).
			WithDetail("valid_keys", SettableKeys)
	}

	if err := ValidateValue(key, value); err != nil {
		return err
	}

	if key == KeyVerbose {
		parsed, _ := strconv.ParseBool(value)
		s.values[key] = parsed
	} else {
		s.values[key] = value
	}

	return s.save()
}

// Delete remove uma chave do arquivo
func (s *Store) Delete(key string) error {
	if _, ok := s.values[key]; !ok {
		return nil
	}

	delete(s.values, key)
	return s.save()
}

// List retorna todas as chaves gravadas com o token mascarado
func (s *Store) List() map[string]string {
	out := make(map[string]string, len(s.values))
	for key := range s.values {
		value, _ := s.Get(key)
		if key == KeyAccessToken {
			value = MaskToken(value)
		}
		out[key] = value
	}
	return out
}

// Keys retorna as chaves gravadas em ordem alfabética
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apiErrors.Wrap(errors.WithMessage(err, "create config dir"), apiErrors.ErrInvalidConfig, "Unable to write configuration.")
	}

	v := viper.New()
	v.SetConfigPermissions(0o600)
	for key, value := range s.values {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(s.path); err != nil {
		return apiErrors.Wrap(errors.WithMessage(err, "write config"), apiErrors.ErrInvalidConfig, "Unable to write configuration.")
	}

	s.exists = true
	return nil
}

// MaskToken mostra os 6 primeiros e os 4 últimos caracteres do token
func MaskToken(token string) string {
	if len(token) <= 10 {
		return "***"
	}
	return token[:6] + "..." + token[len(token)-4:]
}

// ValidateValue valida o valor de uma chave antes de persistir ou aplicar
func ValidateValue(key, value string) error {
	switch key {
	case KeyOutputFormat:
		if value != OutputJSON && value != OutputTable {
			return apiErrors.Newf(apiErrors.ErrInvalidConfig, "Invalid output_format %q: must be json or table.", value)
		}
	case KeyVerbose:
		if _, err := strconv.ParseBool(value); err != nil {
			return apiErrors.Newf(apiErrors.ErrInvalidConfig, "Invalid verbose %q: must be true or false.", value)
		}
	case KeyAPIVersion:
		if len(value) < 2 || value[0] != 'v' {
			return apiErrors.Newf(apiErrors.ErrInvalidConfig, "Invalid api_version %q: expected a value like v22.0.", value)
		}
	case KeyHTTPTimeout:
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return apiErrors.Newf(apiErrors.ErrInvalidConfig, "Invalid http_timeout %q: must be a positive duration like 30s.", value)
		}
	case KeyAccountID:
		if value == "" {
			return apiErrors.New(apiErrors.ErrInvalidAccountID, "")
		}
	}

	return nil
}
