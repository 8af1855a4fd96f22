package domain

type AdSet struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	CampaignID        string           `json:"campaign_id,omitempty"`
	Status            string           `json:"status,omitempty"`
	EffectiveStatus   string           `json:"effective_status,omitempty"`
	CreatedTime       string           `json:"created_time,omitempty"`
	UpdatedTime       string           `json:"updated_time,omitempty"`
	StartTime         string           `json:"start_time,omitempty"`
	EndTime           string           `json:"end_time,omitempty"`
	DailyBudget       string           `json:"daily_budget,omitempty"`
	LifetimeBudget    string           `json:"lifetime_budget,omitempty"`
	BudgetRemaining   string           `json:"budget_remaining,omitempty"`
	BillingEvent      string           `json:"billing_event,omitempty"`
	OptimizationGoal  string           `json:"optimization_goal,omitempty"`
	BidStrategy       string           `json:"bid_strategy,omitempty"`
	BidAmount         string           `json:"bid_amount,omitempty"`
	Targeting         map[string]any   `json:"targeting,omitempty"`
	LearningPhaseInfo map[string]any   `json:"learning_phase_info,omitempty"`
	IssuesInfo        []map[string]any `json:"issues_info,omitempty"`
}

func (a *AdSet) GetID() string     { return a.ID }
func (a *AdSet) GetStatus() string { return a.Status }

type AdSetCreate struct {
	Name             string         `validate:"required"`
	CampaignID       string         `validate:"required,numeric"`
	BillingEvent     string         `validate:"required,oneof=IMPRESSIONS LINK_CLICKS THRUPLAY APP_INSTALLS PAGE_LIKES POST_ENGAGEMENT"`
	OptimizationGoal string         `validate:"required"`
	Targeting        map[string]any `validate:"required"`
	Status           string         `validate:"omitempty,oneof=ACTIVE PAUSED"`
	DailyBudget      string         `validate:"omitempty,numeric"`
	LifetimeBudget   string         `validate:"omitempty,numeric"`
	StartTime        string
	EndTime          string
	BidAmount        string `validate:"omitempty,numeric"`
}

type AdSetUpdate struct {
	Name           *string `validate:"omitempty,min=1"`
	Status         *string `validate:"omitempty,oneof=ACTIVE PAUSED ARCHIVED DELETED"`
	DailyBudget    *string `validate:"omitempty,numeric"`
	LifetimeBudget *string `validate:"omitempty,numeric"`
	BidAmount      *string `validate:"omitempty,numeric"`
	EndTime        *string
}
