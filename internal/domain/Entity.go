package domain

import "strings"

// EntityKind identifica o tipo de objeto da Graph API
type EntityKind string

const (
	KindAccount  EntityKind = "account"
	KindCampaign EntityKind = "campaign"
	KindAdSet    EntityKind = "adset"
	KindAd       EntityKind = "ad"
	KindCreative EntityKind = "creative"
	KindImage    EntityKind = "image"
	KindVideo    EntityKind = "video"
)

// ParseEntityKind aceita singular ou plural ("campaigns", "adsets", "ads")
func ParseEntityKind(s string) (EntityKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "account", "accounts":
		return KindAccount, true
	case "campaign", "campaigns":
		return KindCampaign, true
	case "adset", "adsets":
		return KindAdSet, true
	case "ad", "ads":
		return KindAd, true
	case "creative", "creatives", "adcreative", "adcreatives":
		return KindCreative, true
	case "image", "images", "adimage", "adimages":
		return KindImage, true
	case "video", "videos", "advideo", "advideos":
		return KindVideo, true
	}
	return "", false
}

// Status configurável de campanhas, conjuntos e anúncios
const (
	StatusActive   = "ACTIVE"
	StatusPaused   = "PAUSED"
	StatusArchived = "ARCHIVED"
	StatusDeleted  = "DELETED"
)

// StatusEntity é implementado pelas entidades que podem ser ativadas/pausadas
type StatusEntity interface {
	GetID() string
	GetStatus() string
}

// EntityState é o estado de entrega de uma entidade usado pelo filtro active-only
// e pelos campos de contexto anexados aos insights
type EntityState struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget,omitempty"`
	LifetimeBudget  string `json:"lifetime_budget,omitempty"`
}

// IsActive indica se a entidade está entregando
func (s EntityState) IsActive() bool {
	return s.EffectiveStatus == StatusActive
}
