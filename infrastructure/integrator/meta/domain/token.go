package metadomain

// DebugTokenResponse é a resposta de /debug_token
type DebugTokenResponse struct {
	Data TokenInfo `json:"data"`
}

type TokenInfo struct {
	AppID       string   `json:"app_id"`
	Application string   `json:"application,omitempty"`
	Type        string   `json:"type,omitempty"`
	UserID      string   `json:"user_id"`
	IsValid     bool     `json:"is_valid"`
	ExpiresAt   int64    `json:"expires_at"`
	IssuedAt    int64    `json:"issued_at,omitempty"`
	Scopes      []string `json:"scopes"`
}
