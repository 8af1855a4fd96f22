package domain

type Ad struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	AdSetID              string           `json:"adset_id,omitempty"`
	CampaignID           string           `json:"campaign_id,omitempty"`
	Status               string           `json:"status,omitempty"`
	EffectiveStatus      string           `json:"effective_status,omitempty"`
	CreatedTime          string           `json:"created_time,omitempty"`
	UpdatedTime          string           `json:"updated_time,omitempty"`
	PreviewShareableLink string           `json:"preview_shareable_link,omitempty"`
	Creative             *AdCreative      `json:"creative,omitempty"`
	IssuesInfo           []map[string]any `json:"issues_info,omitempty"`
}

func (a *Ad) GetID() string     { return a.ID }
func (a *Ad) GetStatus() string { return a.Status }

type AdCreate struct {
	Name       string `validate:"required"`
	AdSetID    string `validate:"required,numeric"`
	CreativeID string `validate:"required,numeric"`
	Status     string `validate:"omitempty,oneof=ACTIVE PAUSED"`
}

type AdUpdate struct {
	Name       *string `validate:"omitempty,min=1"`
	Status     *string `validate:"omitempty,oneof=ACTIVE PAUSED ARCHIVED DELETED"`
	CreativeID *string `validate:"omitempty,numeric"`
}
