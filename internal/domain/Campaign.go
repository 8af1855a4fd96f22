package domain

type Campaign struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Status              string   `json:"status,omitempty"`
	EffectiveStatus     string   `json:"effective_status,omitempty"`
	Objective           string   `json:"objective,omitempty"`
	CreatedTime         string   `json:"created_time,omitempty"`
	UpdatedTime         string   `json:"updated_time,omitempty"`
	StartTime           string   `json:"start_time,omitempty"`
	StopTime            string   `json:"stop_time,omitempty"`
	DailyBudget         string   `json:"daily_budget,omitempty"`
	LifetimeBudget      string   `json:"lifetime_budget,omitempty"`
	BudgetRemaining     string   `json:"budget_remaining,omitempty"`
	BidStrategy         string   `json:"bid_strategy,omitempty"`
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
}

func (c *Campaign) GetID() string     { return c.ID }
func (c *Campaign) GetStatus() string { return c.Status }

// CampaignCreate são os parâmetros de criação de campanha
type CampaignCreate struct {
	Name                string   `validate:"required"`
	Objective           string   `validate:"required,oneof=OUTCOME_AWARENESS OUTCOME_TRAFFIC OUTCOME_ENGAGEMENT OUTCOME_LEADS OUTCOME_APP_PROMOTION OUTCOME_SALES"`
	Status              string   `validate:"omitempty,oneof=ACTIVE PAUSED"`
	DailyBudget         string   `validate:"omitempty,numeric"`
	LifetimeBudget      string   `validate:"omitempty,numeric"`
	BidStrategy         string   `validate:"omitempty"`
	SpecialAdCategories []string `validate:"omitempty"`
}

// CampaignUpdate contém apenas os campos a alterar; nil mantém o valor atual
type CampaignUpdate struct {
	Name           *string `validate:"omitempty,min=1"`
	Status         *string `validate:"omitempty,oneof=ACTIVE PAUSED ARCHIVED DELETED"`
	DailyBudget    *string `validate:"omitempty,numeric"`
	LifetimeBudget *string `validate:"omitempty,numeric"`
	BidStrategy    *string
}
