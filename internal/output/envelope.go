package output

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é a resposta de um comando: Success ou Failure, nunca os dois.
// O método não exportado fecha o conjunto de variantes a este pacote
type Envelope interface {
	isEnvelope()
}

// Meta acompanha toda resposta de sucesso
type Meta struct {
	AccountID  string                    `json:"account_id,omitempty"`
	Timestamp  string                    `json:"timestamp"`
	RequestID  string                    `json:"request_id,omitempty"`
	Pagination *domain.PaginationMeta    `json:"pagination,omitempty"`
	RateLimit  *metadomain.RateLimitInfo `json:"rate_limit,omitempty"`
}

type Success struct {
	Data any
	Meta Meta
}

func (Success) isEnvelope() {}

func (s Success) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
		Meta    Meta `json:"meta"`
	}{true, s.Data, s.Meta})
}

// ErrorBody é o corpo do envelope de erro
type ErrorBody struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	Details    map[string]any `json:"details"`
	RetryAfter *int           `json:"retry_after,omitempty"`
}

type Failure struct {
	Error ErrorBody
}

func (Failure) isEnvelope() {}

func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool      `json:"success"`
		Error   ErrorBody `json:"error"`
	}{false, f.Error})
}

// NewSuccess monta o envelope de sucesso com timestamp UTC
func NewSuccess(data any, meta Meta) Success {
	if meta.Timestamp == "" {
		meta.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return Success{Data: data, Meta: meta}
}

// NewFailure classifica qualquer erro na taxonomia e monta o envelope de erro.
// A sugestão de correção, quando existe, vai em details.suggestion
func NewFailure(err error) Failure {
	cliErr := apiErrors.FromError(err)

	details := make(map[string]any, len(cliErr.Details)+1)
	for key, value := range cliErr.Details {
		details[key] = value
	}
	if suggestion := cliErr.Suggestion(); suggestion != "" {
		details["suggestion"] = suggestion
	}

	return Failure{Error: ErrorBody{
		Code:       cliErr.Code,
		Message:    cliErr.Message,
		Retryable:  cliErr.Retryable(),
		Details:    details,
		RetryAfter: cliErr.RetryAfter,
	}}
}
