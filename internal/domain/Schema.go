package domain

// FieldInfo descreve um campo de insights para o comando schema
type FieldInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type BreakdownInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ActionTypeInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ObjectiveInfo struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	PrimaryAction string `json:"primary_action,omitempty"`
}

// ConversionActions é a lista de prioridade usada para definir o resultado principal
var ConversionActions = []string{
	"purchase",
	"lead",
	"complete_registration",
	"subscribe",
	"add_to_cart",
	"initiate_checkout",
	"app_install",
	"link_click",
	"landing_page_view",
}

// ActionAliasPrefixes são os prefixos sob os quais a Meta reporta a mesma ação lógica
var ActionAliasPrefixes = []string{"offsite_conversion.fb_pixel_", "onsite_web_"}

// ObjectiveToAction mapeia o objetivo da campanha para a ação principal
var ObjectiveToAction = map[string]string{
	"OUTCOME_LEADS":         "lead",
	"OUTCOME_SALES":         "purchase",
	"OUTCOME_ENGAGEMENT":    "link_click",
	"OUTCOME_TRAFFIC":       "link_click",
	"OUTCOME_AWARENESS":     "link_click",
	"OUTCOME_APP_PROMOTION": "app_install",
}

var DatePresets = []string{
	"today",
	"yesterday",
	"this_month",
	"last_month",
	"this_quarter",
	"maximum",
	"data_maximum",
	"last_3d",
	"last_7d",
	"last_14d",
	"last_28d",
	"last_30d",
	"last_90d",
	"last_week_mon_sun",
	"last_week_sun_sat",
	"last_quarter",
	"last_year",
	"this_week_mon_today",
	"this_week_sun_today",
	"this_year",
}

// IsDatePreset indica se o preset é aceito pela Graph API
func IsDatePreset(preset string) bool {
	for _, p := range DatePresets {
		if p == preset {
			return true
		}
	}
	return false
}

var InsightBaseFields = FieldSet{"impressions", "clicks", "spend", "reach", "frequency", "cpm", "cpc", "ctr", "actions", "cost_per_action_type"}

var InsightLevelFields = map[Level]FieldSet{
	LevelAccount:  {"account_id", "account_name"},
	LevelCampaign: {"campaign_id", "campaign_name"},
	LevelAdSet:    {"campaign_id", "campaign_name", "adset_id", "adset_name"},
	LevelAd:       {"campaign_id", "campaign_name", "adset_id", "adset_name", "ad_id", "ad_name"},
}

var InsightVideoFields = FieldSet{
	"video_play_actions",
	"video_thruplay_watched_actions",
	"video_p25_watched_actions",
	"video_p50_watched_actions",
	"video_p75_watched_actions",
	"video_p100_watched_actions",
}

var commonInsightFields = []FieldInfo{
	{Name: "impressions", Type: "number", Description: "Total impressions"},
	{Name: "clicks", Type: "number", Description: "Total clicks (all types)"},
	{Name: "spend", Type: "currency", Description: "Total spend in account currency"},
	{Name: "reach", Type: "number", Description: "Unique users reached"},
	{Name: "frequency", Type: "decimal", Description: "Average impressions per user"},
	{Name: "cpm", Type: "currency", Description: "Cost per 1000 impressions"},
	{Name: "cpc", Type: "currency", Description: "Cost per click"},
	{Name: "ctr", Type: "percentage", Description: "Click-through rate"},
	{Name: "cpp", Type: "currency", Description: "Cost per 1000 people reached"},
	{Name: "actions", Type: "array", Description: "Array of action types and values"},
	{Name: "cost_per_action_type", Type: "array", Description: "Array of costs per action type"},
	{Name: "date_start", Type: "string", Description: "Start date of the reporting period"},
	{Name: "date_stop", Type: "string", Description: "End date of the reporting period"},
}

var videoFieldInfo = []FieldInfo{
	{Name: "video_play_actions", Type: "array", Description: "3-second video views"},
	{Name: "video_thruplay_watched_actions", Type: "array", Description: "ThruPlay views (15s or complete)"},
	{Name: "video_p25_watched_actions", Type: "array", Description: "25% video watched"},
	{Name: "video_p50_watched_actions", Type: "array", Description: "50% video watched"},
	{Name: "video_p75_watched_actions", Type: "array", Description: "75% video watched"},
	{Name: "video_p100_watched_actions", Type: "array", Description: "100% video watched"},
	{Name: "video_avg_time_watched_actions", Type: "array", Description: "Average time watched"},
}

var levelFieldInfo = map[Level][]FieldInfo{
	LevelAccount: {
		{Name: "account_id", Type: "string", Description: "Ad account ID"},
		{Name: "account_name", Type: "string", Description: "Ad account name"},
	},
	LevelCampaign: {
		{Name: "campaign_id", Type: "string", Description: "Campaign ID"},
		{Name: "campaign_name", Type: "string", Description: "Campaign name"},
	},
	LevelAdSet: {
		{Name: "adset_id", Type: "string", Description: "Ad set ID"},
		{Name: "adset_name", Type: "string", Description: "Ad set name"},
		{Name: "campaign_id", Type: "string", Description: "Parent campaign ID"},
		{Name: "campaign_name", Type: "string", Description: "Parent campaign name"},
	},
	LevelAd: {
		{Name: "ad_id", Type: "string", Description: "Ad ID"},
		{Name: "ad_name", Type: "string", Description: "Ad name"},
		{Name: "adset_id", Type: "string", Description: "Parent ad set ID"},
		{Name: "adset_name", Type: "string", Description: "Parent ad set name"},
		{Name: "campaign_id", Type: "string", Description: "Parent campaign ID"},
		{Name: "campaign_name", Type: "string", Description: "Parent campaign name"},
	},
}

// InsightFieldsFor retorna os campos de identidade do nível seguidos dos campos comuns
func InsightFieldsFor(level Level) []FieldInfo {
	out := append([]FieldInfo{}, levelFieldInfo[level]...)
	return append(out, commonInsightFields...)
}

func VideoFieldInfo() []FieldInfo {
	return videoFieldInfo
}

// KnownInsightFields é o catálogo aceito em insights --fields
func KnownInsightFields() FieldSet {
	known := FieldSet{}
	for _, level := range Levels {
		for _, f := range InsightFieldsFor(level) {
			known = known.With(Field(f.Name))
		}
	}
	for _, f := range videoFieldInfo {
		known = known.With(Field(f.Name))
	}
	return known.With("objective", "inline_link_clicks", "unique_clicks", "cost_per_unique_click", "outbound_clicks")
}

var Breakdowns = []BreakdownInfo{
	{Name: "age", Category: "demographics", Description: "Age ranges (18-24, 25-34, 35-44, 45-54, 55-64, 65+)"},
	{Name: "gender", Category: "demographics", Description: "Gender (male, female, unknown)"},
	{Name: "country", Category: "geography", Description: "Country code (US, GB, CA, etc.)"},
	{Name: "region", Category: "geography", Description: "State/region within country"},
	{Name: "dma", Category: "geography", Description: "Designated Market Area (US only)"},
	{Name: "publisher_platform", Category: "placement", Description: "Platform: facebook, instagram, messenger, audience_network"},
	{Name: "platform_position", Category: "placement", Description: "Position: feed, story, reels, right_column, instant_article, etc."},
	{Name: "device_platform", Category: "placement", Description: "Device: mobile, desktop"},
	{Name: "impression_device", Category: "placement", Description: "Specific device: iPhone, Android, Desktop, etc."},
	{Name: "hourly_stats_aggregated_by_advertiser_time_zone", Category: "time", Description: "Hourly breakdown (0-23)"},
	{Name: "product_id", Category: "product", Description: "Product catalog item ID"},
}

// IsBreakdown indica se a dimensão é uma quebra conhecida
func IsBreakdown(name string) bool {
	for _, b := range Breakdowns {
		if b.Name == name {
			return true
		}
	}
	return false
}

var ActionTypes = []ActionTypeInfo{
	{Name: "purchase", Category: "conversion", Description: "Completed purchases"},
	{Name: "lead", Category: "conversion", Description: "Lead form submissions"},
	{Name: "complete_registration", Category: "conversion", Description: "Registration completions"},
	{Name: "subscribe", Category: "conversion", Description: "Subscription sign-ups"},
	{Name: "add_to_cart", Category: "conversion", Description: "Items added to cart"},
	{Name: "initiate_checkout", Category: "conversion", Description: "Checkout started"},
	{Name: "add_payment_info", Category: "conversion", Description: "Payment info added"},
	{Name: "search", Category: "conversion", Description: "Searches performed"},
	{Name: "view_content", Category: "conversion", Description: "Content/product views"},
	{Name: "link_click", Category: "engagement", Description: "Link clicks"},
	{Name: "landing_page_view", Category: "engagement", Description: "Landing page views (link click + page load)"},
	{Name: "post_engagement", Category: "engagement", Description: "All post engagements (likes, comments, shares)"},
	{Name: "page_engagement", Category: "engagement", Description: "Page likes, follows, check-ins"},
	{Name: "video_view", Category: "engagement", Description: "Video views (3+ seconds)"},
	{Name: "post_reaction", Category: "engagement", Description: "Reactions on posts"},
	{Name: "comment", Category: "engagement", Description: "Comments on posts"},
	{Name: "post_save", Category: "engagement", Description: "Post saves"},
	{Name: "share", Category: "engagement", Description: "Shares"},
	{Name: "app_install", Category: "app", Description: "App installations"},
	{Name: "app_custom_event", Category: "app", Description: "Custom app events"},
	{Name: "onsite_conversion.messaging_conversation_started_7d", Category: "messaging", Description: "Messaging conversations started"},
	{Name: "onsite_conversion.messaging_first_reply", Category: "messaging", Description: "First message replies"},
}

var Objectives = []ObjectiveInfo{
	{Name: "OUTCOME_AWARENESS", Description: "Reach and brand awareness campaigns", PrimaryAction: "link_click"},
	{Name: "OUTCOME_ENGAGEMENT", Description: "Engagement, video views, page likes", PrimaryAction: "link_click"},
	{Name: "OUTCOME_TRAFFIC", Description: "Website traffic campaigns", PrimaryAction: "link_click"},
	{Name: "OUTCOME_LEADS", Description: "Lead generation campaigns", PrimaryAction: "lead"},
	{Name: "OUTCOME_APP_PROMOTION", Description: "App installs and engagement", PrimaryAction: "app_install"},
	{Name: "OUTCOME_SALES", Description: "Conversions and catalog sales", PrimaryAction: "purchase"},
}
