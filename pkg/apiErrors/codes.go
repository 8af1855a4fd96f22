package apiErrors

// Códigos de erro expostos no envelope de saída
const (
	// Autenticação
	ErrAuthNotConfigured          = "AUTH_NOT_CONFIGURED"
	ErrAuthTokenExpired           = "AUTH_TOKEN_EXPIRED"
	ErrAuthTokenInvalid           = "AUTH_TOKEN_INVALID"
	ErrAuthInsufficientPermission = "AUTH_INSUFFICIENT_PERMISSIONS"

	// Rate limit e cota
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrQuotaExceeded     = "QUOTA_EXCEEDED"

	// Validação
	ErrInvalidAccountID     = "INVALID_ACCOUNT_ID"
	ErrInvalidCampaignID    = "INVALID_CAMPAIGN_ID"
	ErrInvalidAdSetID       = "INVALID_ADSET_ID"
	ErrInvalidAdID          = "INVALID_AD_ID"
	ErrInvalidParameter     = "INVALID_PARAMETER"
	ErrMissingRequiredField = "MISSING_REQUIRED_FIELD"

	// Entidades remotas
	ErrEntityNotFound       = "ENTITY_NOT_FOUND"
	ErrDuplicateEntity      = "DUPLICATE_ENTITY"
	ErrOperationFailed      = "OPERATION_FAILED"
	ErrAPIVersionDeprecated = "API_VERSION_DEPRECATED"
	ErrAPIError             = "API_ERROR"

	// Rede
	ErrNetwork = "NETWORK_ERROR"
	ErrTimeout = "TIMEOUT"

	// Configuração
	ErrConfigNotFound = "CONFIG_NOT_FOUND"
	ErrInvalidConfig  = "INVALID_CONFIG"

	ErrUnknown = "UNKNOWN_ERROR"
)

// DefaultRetryAfter é a dica de espera (segundos) devolvida em erros de throttling
const DefaultRetryAfter = 60

type definition struct {
	Message    string
	Suggestion string
	Retryable  bool
}

var definitions = map[string]definition{
	ErrAuthNotConfigured: {
		Message:    "No access token configured.",
		Suggestion: "Run `meta-ads auth login` to authenticate.",
	},
	ErrAuthTokenExpired: {
		Message:    "Access token has expired.",
		Suggestion: "Run `meta-ads auth login` with a new token.",
	},
	ErrAuthTokenInvalid: {
		Message:    "Access token is invalid.",
		Suggestion: "Check your token and run `meta-ads auth login` again.",
	},
	ErrAuthInsufficientPermission: {
		Message:    "Token lacks required permissions.",
		Suggestion: "Ensure your token has ads_management and ads_read permissions.",
	},
	ErrRateLimitExceeded: {
		Message:    "Rate limit exceeded. Too many requests to Meta API.",
		Suggestion: "Wait a few minutes before retrying.",
		Retryable:  true,
	},
	ErrQuotaExceeded: {
		Message:    "API quota exceeded.",
		Suggestion: "Wait until your quota resets or request a higher limit.",
		Retryable:  true,
	},
	ErrInvalidAccountID: {
		Message:    "Invalid or missing ad account ID.",
		Suggestion: "Use `--account` or run `meta-ads accounts switch <id>`.",
	},
	ErrInvalidCampaignID: {
		Message:    "Invalid campaign ID.",
		Suggestion: "Check the ID with `meta-ads campaigns list`.",
	},
	ErrInvalidAdSetID: {
		Message:    "Invalid ad set ID.",
		Suggestion: "Check the ID with `meta-ads adsets list`.",
	},
	ErrInvalidAdID: {
		Message:    "Invalid ad ID.",
		Suggestion: "Check the ID with `meta-ads ads list`.",
	},
	ErrInvalidParameter: {
		Message:    "Invalid parameter provided.",
		Suggestion: "Check the command help for valid values.",
	},
	ErrMissingRequiredField: {
		Message:    "A required field is missing.",
		Suggestion: "Check the command help for required flags.",
	},
	ErrEntityNotFound: {
		Message:    "The requested entity was not found.",
		Suggestion: "Verify the ID exists and you have access to it.",
	},
	ErrDuplicateEntity: {
		Message:    "An entity with this name already exists.",
		Suggestion: "Use a different name.",
	},
	ErrOperationFailed: {
		Message:    "The operation failed.",
		Suggestion: "Try again or check Meta Ads Manager.",
	},
	ErrAPIVersionDeprecated: {
		Message:    "The API version is deprecated.",
		Suggestion: "Update api_version with `meta-ads config set api_version <version>`.",
	},
	ErrAPIError: {
		Message:    "Meta API returned an error.",
		Suggestion: "Check the error details.",
	},
	ErrNetwork: {
		Message:    "Network error. Unable to reach Meta API.",
		Suggestion: "Check your internet connection.",
		Retryable:  true,
	},
	ErrTimeout: {
		Message:    "Request timed out.",
		Suggestion: "Try again.",
		Retryable:  true,
	},
	ErrConfigNotFound: {
		Message:    "Configuration file not found.",
		Suggestion: "Run `meta-ads auth login` to create one.",
	},
	ErrInvalidConfig: {
		Message:    "Configuration is invalid.",
		Suggestion: "Check the config file or run `meta-ads config list`.",
	},
	ErrUnknown: {
		Message: "An unknown error occurred.",
	},
}

// IsRetryable diz se o chamador pode tentar novamente a mesma operação
func IsRetryable(code string) bool {
	return definitions[code].Retryable
}

// DefaultMessage retorna a mensagem fixa de um código
func DefaultMessage(code string) string {
	if def, ok := definitions[code]; ok {
		return def.Message
	}
	return definitions[ErrUnknown].Message
}

// Suggestion retorna a sugestão de correção de um código, se houver
func Suggestion(code string) string {
	return definitions[code].Suggestion
}
