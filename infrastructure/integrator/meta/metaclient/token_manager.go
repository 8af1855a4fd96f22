package metaclient

import (
	"context"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// TokenManager valida tokens de acesso via /debug_token
type TokenManager struct {
	client Client
	now    func() time.Time
}

// TokenStatus é o resumo exibido por `auth status` e `auth login`
type TokenStatus struct {
	Valid              bool     `json:"valid"`
	AppID              string   `json:"app_id,omitempty"`
	UserID             string   `json:"user_id,omitempty"`
	ExpiresAt          string   `json:"expires_at,omitempty"`
	ExpiresIn          string   `json:"expires_in"`
	Scopes             []string `json:"scopes"`
	MissingPermissions []string `json:"missing_permissions,omitempty"`
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(client Client) *TokenManager {
	return &TokenManager{client: client, now: time.Now}
}

// Validate consulta debug_token usando o próprio token como input e credencial
func (tm *TokenManager) Validate(ctx context.Context, token string) (*metadomain.TokenInfo, error) {
	if token == "" {
		return nil, apiErrors.New(apiErrors.ErrAuthNotConfigured, "")
	}

	params := url.Values{}
	params.Set("input_token", token)
	params.Set("access_token", token)

	var response metadomain.DebugTokenResponse
	if err := tm.client.Get(ctx, "debug_token", params, &response); err != nil {
		log.ForContext(ctx).WithError(err).Debug("Falha ao validar token")
		return nil, err
	}

	info := &response.Data
	if !info.IsValid {
		return nil, apiErrors.New(apiErrors.ErrAuthTokenInvalid, "")
	}

	if info.ExpiresAt > 0 && time.Unix(info.ExpiresAt, 0).Before(tm.now()) {
		return nil, apiErrors.New(apiErrors.ErrAuthTokenExpired, "")
	}

	return info, nil
}

// Status valida o token e monta o resumo com permissões ausentes
func (tm *TokenManager) Status(ctx context.Context, token string) (*TokenStatus, error) {
	info, err := tm.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	status := &TokenStatus{
		Valid:              true,
		AppID:              info.AppID,
		UserID:             info.UserID,
		ExpiresIn:          FormatExpiry(info.ExpiresAt, tm.now()),
		Scopes:             info.Scopes,
		MissingPermissions: MissingPermissions(info),
	}
	if info.ExpiresAt > 0 {
		status.ExpiresAt = time.Unix(info.ExpiresAt, 0).UTC().Format(time.RFC3339)
	}

	return status, nil
}
