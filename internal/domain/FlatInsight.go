package domain

// ResultTypeNone é o result_type de registros sem nenhuma ação de conversão reconhecida
const ResultTypeNone = "none"

// FlatInsight é o insight normalizado: métricas numéricas e um único resultado principal
type FlatInsight struct {
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdSetID      string `json:"adset_id,omitempty"`
	AdSetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`
	Status       string `json:"status,omitempty"`

	Spend       float64  `json:"spend"`
	Impressions float64  `json:"impressions"`
	Reach       float64  `json:"reach"`
	Clicks      float64  `json:"clicks"`
	CTR         float64  `json:"ctr"`
	CPC         *float64 `json:"cpc"`
	CPM         *float64 `json:"cpm"`

	Results       float64  `json:"results"`
	ResultType    string   `json:"result_type"`
	CostPerResult *float64 `json:"cost_per_result"`

	LinkClicks       float64 `json:"link_clicks"`
	LandingPageViews float64 `json:"landing_page_views"`

	VideoPlays    *float64 `json:"video_plays,omitempty"`
	VideoThruplay *float64 `json:"video_thruplays,omitempty"`
	VideoP25      *float64 `json:"video_p25,omitempty"`
	VideoP50      *float64 `json:"video_p50,omitempty"`
	VideoP75      *float64 `json:"video_p75,omitempty"`
	VideoP100     *float64 `json:"video_p100,omitempty"`

	Dimensions map[string]string `json:"dimensions,omitempty"`

	DateStart string `json:"date_start,omitempty"`
	DateStop  string `json:"date_stop,omitempty"`

	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
}

// Entity retorna id e nome da entidade do nível de agregação
func (f *FlatInsight) Entity(level Level) (id, name string) {
	switch level {
	case LevelAd:
		return f.AdID, f.AdName
	case LevelAdSet:
		return f.AdSetID, f.AdSetName
	case LevelCampaign:
		return f.CampaignID, f.CampaignName
	}

	// Nível de conta: usa o identificador mais específico disponível
	switch {
	case f.AdID != "":
		return f.AdID, f.AdName
	case f.AdSetID != "":
		return f.AdSetID, f.AdSetName
	default:
		return f.CampaignID, f.CampaignName
	}
}

// CompactInsight é a projeção mínima para reduzir o volume de saída
type CompactInsight struct {
	Name           string   `json:"name"`
	ID             string   `json:"id"`
	Spend          float64  `json:"spend"`
	Results        float64  `json:"results"`
	CostPerResult  *float64 `json:"cost_per_result"`
	ResultType     string   `json:"result_type"`
	Status         string   `json:"status,omitempty"`
	DailyBudget    string   `json:"daily_budget,omitempty"`
	LifetimeBudget string   `json:"lifetime_budget,omitempty"`
}

// PerformerRef identifica a melhor/pior entidade do resumo
type PerformerRef struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CostPerResult float64 `json:"cost_per_result"`
	Spend         float64 `json:"spend"`
	Results       float64 `json:"results"`
}

// InsightSummary é a agregação de um conjunto de insights normalizados
type InsightSummary struct {
	TotalSpend        float64       `json:"total_spend"`
	TotalResults      float64       `json:"total_results"`
	TotalImpressions  float64       `json:"total_impressions"`
	TotalClicks       float64       `json:"total_clicks"`
	AvgCostPerResult  *float64      `json:"avg_cost_per_result"`
	AvgCTR            float64       `json:"avg_ctr"`
	EntityCount       int           `json:"entity_count"`
	WithResultsCount  int           `json:"with_results_count"`
	LowestCPR         *PerformerRef `json:"lowest_cpr"`
	HighestCPR        *PerformerRef `json:"highest_cpr"`
	PrimaryResultType string        `json:"primary_result_type,omitempty"`
	DateStart         string        `json:"date_start,omitempty"`
	DateStop          string        `json:"date_stop,omitempty"`
}

// BreakdownValue é o agregado de um valor de dimensão (ex.: age=25-34)
type BreakdownValue struct {
	Value         string   `json:"value"`
	Spend         float64  `json:"spend"`
	Results       float64  `json:"results"`
	Impressions   float64  `json:"impressions"`
	CostPerResult *float64 `json:"cost_per_result"`
}

// BreakdownSummary agrega uma dimensão; Values fica ordenado por gasto decrescente
type BreakdownSummary struct {
	Dimension  string           `json:"dimension"`
	LowestCPR  *BreakdownValue  `json:"lowest_cpr"`
	HighestCPR *BreakdownValue  `json:"highest_cpr"`
	Values     []BreakdownValue `json:"values"`
}

// Period é o intervalo efetivo de um dos lados da comparação
type Period struct {
	Preset string `json:"preset,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// MetricChange compara uma métrica entre os dois períodos
type MetricChange struct {
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	ChangePct float64 `json:"change_pct"`
}

// NullableMetricChange é usado quando a métrica pode ser indefinida (custo por resultado)
type NullableMetricChange struct {
	Current   *float64 `json:"current"`
	Previous  *float64 `json:"previous"`
	ChangePct *float64 `json:"change_pct"`
}

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// PeriodComparison é o resultado de insights --compare
type PeriodComparison struct {
	CurrentPeriod  Period               `json:"current_period"`
	PreviousPeriod Period               `json:"previous_period"`
	Spend          MetricChange         `json:"spend"`
	Results        MetricChange         `json:"results"`
	Impressions    MetricChange         `json:"impressions"`
	Clicks         MetricChange         `json:"clicks"`
	CTR            MetricChange         `json:"ctr"`
	CostPerResult  NullableMetricChange `json:"cost_per_result"`
	ResultType     string               `json:"result_type,omitempty"`
	Trend          string               `json:"trend"`
	Warning        string               `json:"warning,omitempty"`
}
