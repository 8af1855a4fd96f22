package metadomain

import "strings"

// ErrorResponse representa a estrutura de erro da API do Meta.
// Error é nil quando o payload não traz erro (inclusive em respostas HTTP 200)
type ErrorResponse struct {
	Error *ErrorDetails `json:"error,omitempty"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode,omitempty"`
	ErrorUserTitle string `json:"error_user_title,omitempty"`
	ErrorUserMsg   string `json:"error_user_msg,omitempty"`
	FBTraceID      string `json:"fbtrace_id"`
	ErrorData      any    `json:"error_data,omitempty"`
}

// IsAuthError indica erro de sessão/token (OAuthException 190 ou sessão inválida 102)
func (e *ErrorDetails) IsAuthError() bool {
	return e.Code == 190 || e.Code == 102
}

// IsTokenExpired verifica se o erro é de token expirado.
// Subcódigos 463 (expirado) e 467 (sessão invalidada pelo usuário) indicam que é preciso um novo token
func (e *ErrorDetails) IsTokenExpired() bool {
	return e.Code == 190 && (e.ErrorSubcode == 463 || e.ErrorSubcode == 467)
}

// IsPermissionError cobre o código 10 e a faixa 200-299 de permissões
func (e *ErrorDetails) IsPermissionError() bool {
	return e.Code == 10 || (e.Code >= 200 && e.Code <= 299)
}

// IsRateLimited cobre os limites de aplicação, usuário, página e os limites da Marketing API (80000-80014)
func (e *ErrorDetails) IsRateLimited() bool {
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}

	return e.Code >= 80000 && e.Code <= 80014
}

// IsQuotaExceeded indica limite de aplicação atingido (341)
func (e *ErrorDetails) IsQuotaExceeded() bool {
	return e.Code == 341
}

// IsNotFound trata o código 100 com subcódigo 33 ou mensagem de objeto inexistente
func (e *ErrorDetails) IsNotFound() bool {
	if e.Code != 100 {
		return false
	}

	message := strings.ToLower(e.Message)
	return e.ErrorSubcode == 33 || strings.Contains(message, "not found") || strings.Contains(message, "does not exist")
}

func (e *ErrorDetails) IsInvalidParameter() bool {
	return e.Code == 100
}

func (e *ErrorDetails) IsDeprecatedVersion() bool {
	return e.Code == 2635
}

func (e *ErrorDetails) IsDuplicate() bool {
	return strings.Contains(strings.ToLower(e.Message), "already exists")
}

func (e *ErrorDetails) IsOperationFailed() bool {
	return e.Code == 1 || e.Code == 2
}
