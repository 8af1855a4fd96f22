package apiErrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
)

func TestFromMetaError(t *testing.T) {
	tests := []struct {
		name          string
		details       metadomain.ErrorDetails
		wantCode      string
		wantRetryable bool
		validate      func(t *testing.T, err *CLIError)
	}{
		{
			name:     "token expirado",
			details:  metadomain.ErrorDetails{Code: 190, ErrorSubcode: 463, Type: "OAuthException"},
			wantCode: ErrAuthTokenExpired,
		},
		{
			name:     "sessão invalidada pelo usuário",
			details:  metadomain.ErrorDetails{Code: 190, ErrorSubcode: 467},
			wantCode: ErrAuthTokenExpired,
		},
		{
			name:     "token inválido",
			details:  metadomain.ErrorDetails{Code: 190, Message: "Invalid OAuth access token."},
			wantCode: ErrAuthTokenInvalid,
		},
		{
			name:     "permissão insuficiente",
			details:  metadomain.ErrorDetails{Code: 294},
			wantCode: ErrAuthInsufficientPermission,
		},
		{
			name:          "rate limit com dica de espera",
			details:       metadomain.ErrorDetails{Code: 17, FBTraceID: "trace123"},
			wantCode:      ErrRateLimitExceeded,
			wantRetryable: true,
			validate: func(t *testing.T, err *CLIError) {
				require.NotNil(t, err.RetryAfter)
				assert.Equal(t, 60, *err.RetryAfter)
				assert.Equal(t, "trace123", err.Details["fbtrace_id"])
			},
		},
		{
			name:          "limite da marketing api",
			details:       metadomain.ErrorDetails{Code: 80004},
			wantCode:      ErrRateLimitExceeded,
			wantRetryable: true,
		},
		{
			name:          "cota",
			details:       metadomain.ErrorDetails{Code: 341},
			wantCode:      ErrQuotaExceeded,
			wantRetryable: true,
		},
		{
			name:     "objeto inexistente",
			details:  metadomain.ErrorDetails{Code: 100, ErrorSubcode: 33, Message: "Object with ID '1' does not exist"},
			wantCode: ErrEntityNotFound,
		},
		{
			name:     "parâmetro inválido",
			details:  metadomain.ErrorDetails{Code: 100, Message: "Invalid parameter"},
			wantCode: ErrInvalidParameter,
			validate: func(t *testing.T, err *CLIError) {
				assert.Equal(t, "Invalid parameter", err.Message)
			},
		},
		{
			name:     "versão descontinuada",
			details:  metadomain.ErrorDetails{Code: 2635},
			wantCode: ErrAPIVersionDeprecated,
		},
		{
			name:     "erro genérico preserva detalhes da meta",
			details:  metadomain.ErrorDetails{Code: 1487, ErrorSubcode: 9, Type: "FacebookApiException", Message: "boom", FBTraceID: "abc"},
			wantCode: ErrAPIError,
			validate: func(t *testing.T, err *CLIError) {
				assert.Equal(t, "boom", err.Message)
				assert.Equal(t, 1487, err.Details["meta_code"])
				assert.Equal(t, 9, err.Details["meta_subcode"])
				assert.Equal(t, "FacebookApiException", err.Details["meta_type"])
				assert.Equal(t, "abc", err.Details["fbtrace_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := tt.details
			err := FromMetaError(&details)

			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantRetryable, err.Retryable())
			if tt.validate != nil {
				tt.validate(t, err)
			}
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestFromError(t *testing.T) {
	classified := New(ErrInvalidAccountID, "")
	assert.Same(t, classified, FromError(fmt.Errorf("wrapped: %w", classified)))

	assert.Equal(t, ErrTimeout, FromError(context.DeadlineExceeded).Code)
	assert.Equal(t, ErrTimeout, FromError(&net.OpError{Op: "dial", Err: timeoutErr{}}).Code)
	assert.Equal(t, ErrNetwork, FromError(&net.DNSError{Err: "no such host", Name: "graph.facebook.com"}).Code)
	assert.Equal(t, ErrUnknown, FromError(errors.New("weird")).Code)

	assert.True(t, IsRetryable(ErrNetwork))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.False(t, IsRetryable(ErrAPIError))
}

func TestNewUsesFixedMessage(t *testing.T) {
	err := New(ErrAuthNotConfigured, "")

	assert.Equal(t, "No access token configured.", err.Message)
	assert.Equal(t, "Run `meta-ads auth login` to authenticate.", err.Suggestion())
	assert.False(t, err.Retryable())
}
