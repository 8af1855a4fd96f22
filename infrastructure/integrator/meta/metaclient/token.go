package metaclient

import (
	"fmt"
	"slices"
	"time"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
)

// RequiredScopes são as permissões necessárias para todas as operações da CLI
var RequiredScopes = []string{"ads_management", "ads_read", "business_management"}

// MissingPermissions retorna as permissões obrigatórias ausentes no token
func MissingPermissions(info *metadomain.TokenInfo) []string {
	var missing []string
	for _, scope := range RequiredScopes {
		if !slices.Contains(info.Scopes, scope) {
			missing = append(missing, scope)
		}
	}
	return missing
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d days, %d hours and %d minutes", days, hours, minutes)
}

// FormatExpiry descreve quando o token expira; expires_at 0 significa token sem expiração
func FormatExpiry(expiresAt int64, now time.Time) string {
	if expiresAt == 0 {
		return "never"
	}

	remaining := time.Unix(expiresAt, 0).Sub(now)
	if remaining <= 0 {
		return "expired"
	}

	return FormatDuration(int64(remaining.Seconds()))
}
