package apiErrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
)

// CLIError representa um erro padronizado da taxonomia da CLI
type CLIError struct {
	Code       string         // Código exposto no envelope
	Message    string         // Mensagem para o usuário
	Details    map[string]any // Detalhes adicionais (opcional)
	RetryAfter *int           // Segundos sugeridos antes de tentar novamente
	Err        error          // Erro de origem (opcional)
}

// Error implementa a interface error
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap retorna o erro subjacente
func (e *CLIError) Unwrap() error {
	return e.Err
}

// Retryable indica se o código é recuperável por nova tentativa
func (e *CLIError) Retryable() bool {
	return IsRetryable(e.Code)
}

// Suggestion retorna a sugestão fixa do código
func (e *CLIError) Suggestion() string {
	return Suggestion(e.Code)
}

// WithDetail adiciona um detalhe e retorna o próprio erro
func (e *CLIError) WithDetail(key string, value any) *CLIError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// New cria um erro com a mensagem informada, ou a mensagem fixa do código quando vazia
func New(code, message string) *CLIError {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &CLIError{Code: code, Message: message}
}

// Newf cria um erro com mensagem formatada
func Newf(code, format string, args ...any) *CLIError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap associa um erro de origem a um código
func Wrap(err error, code, message string) *CLIError {
	cliErr := New(code, message)
	cliErr.Err = err
	return cliErr
}

// FromMetaError converte o payload de erro da Graph API para a taxonomia
func FromMetaError(details *metadomain.ErrorDetails) *CLIError {
	if details == nil {
		return New(ErrUnknown, "")
	}

	var cliErr *CLIError

	switch {
	case details.IsTokenExpired():
		cliErr = New(ErrAuthTokenExpired, "")
	case details.IsAuthError():
		cliErr = New(ErrAuthTokenInvalid, "")
	case details.IsPermissionError():
		cliErr = New(ErrAuthInsufficientPermission, "")
	case details.IsRateLimited():
		retryAfter := DefaultRetryAfter
		cliErr = New(ErrRateLimitExceeded, "")
		cliErr.RetryAfter = &retryAfter
	case details.IsQuotaExceeded():
		retryAfter := DefaultRetryAfter
		cliErr = New(ErrQuotaExceeded, "")
		cliErr.RetryAfter = &retryAfter
	case details.IsNotFound():
		cliErr = New(ErrEntityNotFound, details.Message)
	case details.IsDuplicate():
		cliErr = New(ErrDuplicateEntity, details.Message)
	case details.IsInvalidParameter():
		cliErr = New(ErrInvalidParameter, details.Message)
	case details.IsDeprecatedVersion():
		cliErr = New(ErrAPIVersionDeprecated, details.Message)
	case details.IsOperationFailed():
		cliErr = New(ErrOperationFailed, details.Message)
	default:
		message := details.Message
		if message == "" {
			message = DefaultMessage(ErrAPIError)
		}
		cliErr = New(ErrAPIError, message)
	}

	cliErr.WithDetail("meta_code", details.Code)
	if details.ErrorSubcode != 0 {
		cliErr.WithDetail("meta_subcode", details.ErrorSubcode)
	}
	if details.Type != "" {
		cliErr.WithDetail("meta_type", details.Type)
	}
	if details.FBTraceID != "" {
		cliErr.WithDetail("fbtrace_id", details.FBTraceID)
	}
	if details.ErrorUserMsg != "" {
		cliErr.WithDetail("meta_user_message", details.ErrorUserMsg)
	}

	return cliErr
}

// FromError classifica qualquer erro Go na taxonomia.
// Erros já classificados passam adiante sem alteração de código
func FromError(err error) *CLIError {
	if err == nil {
		return New(ErrUnknown, "")
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	if isTimeout(err) {
		return Wrap(err, ErrTimeout, "")
	}

	if isNetworkError(err) {
		return Wrap(err, ErrNetwork, "")
	}

	return Wrap(err, ErrUnknown, err.Error())
}

// Code devolve o código de erro de qualquer erro, sem alocar um novo CLIError quando já classificado
func Code(err error) string {
	return FromError(err).Code
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return strings.Contains(err.Error(), "connection refused") || strings.Contains(err.Error(), "no such host")
}
