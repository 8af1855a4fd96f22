package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Level é o nível de agregação dos insights
type Level string

const (
	LevelAccount  Level = "account"
	LevelCampaign Level = "campaign"
	LevelAdSet    Level = "adset"
	LevelAd       Level = "ad"
)

var Levels = []Level{LevelAccount, LevelCampaign, LevelAdSet, LevelAd}

func ParseLevel(s string) (Level, error) {
	for _, level := range Levels {
		if string(level) == s {
			return level, nil
		}
	}
	return "", apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid level %q: must be account, campaign, adset or ad.", s)
}

// EntityKind retorna o tipo de entidade correspondente ao nível
func (l Level) EntityKind() EntityKind {
	switch l {
	case LevelCampaign:
		return KindCampaign
	case LevelAdSet:
		return KindAdSet
	case LevelAd:
		return KindAd
	}
	return KindAccount
}

// Action é uma entrada de actions / cost_per_action_type
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é um registro bruto do endpoint de insights. Métricas chegam como string;
// dimensões de breakdown (age, country, ...) ficam em Dimensions
type Insight struct {
	AccountID    string `json:"account_id,omitempty"`
	AccountName  string `json:"account_name,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdSetID      string `json:"adset_id,omitempty"`
	AdSetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`
	Objective    string `json:"objective,omitempty"`

	Impressions string `json:"impressions,omitempty"`
	Clicks      string `json:"clicks,omitempty"`
	Spend       string `json:"spend,omitempty"`
	Reach       string `json:"reach,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	CPM         string `json:"cpm,omitempty"`
	CPC         string `json:"cpc,omitempty"`
	CTR         string `json:"ctr,omitempty"`

	Actions           []Action `json:"actions,omitempty"`
	CostPerActionType []Action `json:"cost_per_action_type,omitempty"`

	VideoPlayActions     []Action `json:"video_play_actions,omitempty"`
	VideoThruplayActions []Action `json:"video_thruplay_watched_actions,omitempty"`
	VideoP25Actions      []Action `json:"video_p25_watched_actions,omitempty"`
	VideoP50Actions      []Action `json:"video_p50_watched_actions,omitempty"`
	VideoP75Actions      []Action `json:"video_p75_watched_actions,omitempty"`
	VideoP100Actions     []Action `json:"video_p100_watched_actions,omitempty"`

	DateStart string `json:"date_start,omitempty"`
	DateStop  string `json:"date_stop,omitempty"`

	Dimensions map[string]string `json:"-"`
}

type insightAlias Insight

func (i *Insight) UnmarshalJSON(data []byte) error {
	var alias insightAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Insight(alias)
	for _, b := range Breakdowns {
		value, ok := raw[b.Name]
		if !ok {
			continue
		}
		if i.Dimensions == nil {
			i.Dimensions = map[string]string{}
		}
		switch typed := value.(type) {
		case string:
			i.Dimensions[b.Name] = typed
		default:
			encoded, _ := json.MarshalToString(typed)
			i.Dimensions[b.Name] = encoded
		}
	}

	return nil
}

// MarshalJSON devolve as dimensões no nível raiz, como a Graph API
func (i Insight) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(insightAlias(i))
	if err != nil || len(i.Dimensions) == 0 {
		return base, err
	}

	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range i.Dimensions {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// TimeRange é o intervalo explícito enviado em time_range
type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// InsightsQuery descreve uma consulta ao endpoint {account}/insights
type InsightsQuery struct {
	Level        Level
	DatePreset   string
	TimeRange    *TimeRange
	Fields       FieldSet // vazio usa os campos do nível + campos base
	ExtraFields  FieldSet
	Breakdowns   []string
	Limit        int
	All          bool
	VideoMetrics bool
}
