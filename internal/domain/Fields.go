package domain

import (
	"strings"

	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// Field é um nome de campo da Graph API; campos aninhados usam a sintaxe "creative{id,name}"
type Field string

// Base retorna o nome do campo sem a expansão aninhada
func (f Field) Base() string {
	name := string(f)
	if i := strings.IndexByte(name, '{'); i >= 0 {
		return name[:i]
	}
	return name
}

// FieldSet é a seleção ordenada de campos enviada no parâmetro "fields"
type FieldSet []Field

func (fs FieldSet) String() string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func (fs FieldSet) Contains(name string) bool {
	for _, f := range fs {
		if f.Base() == name {
			return true
		}
	}
	return false
}

// With retorna uma cópia com os campos extras anexados, sem duplicar
func (fs FieldSet) With(extra ...Field) FieldSet {
	out := make(FieldSet, 0, len(fs)+len(extra))
	out = append(out, fs...)
	for _, f := range extra {
		if !out.Contains(f.Base()) {
			out = append(out, f)
		}
	}
	return out
}

// Validate garante que todo campo pertence ao catálogo informado
func (fs FieldSet) Validate(known FieldSet) error {
	for _, f := range fs {
		if !known.Contains(f.Base()) {
			return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Unknown field: %s", f.Base()).
				WithDetail("field", f.Base())
		}
	}
	return nil
}

// ParseFieldSet converte uma lista separada por vírgulas, validando contra o catálogo.
// Vírgulas dentro de chaves pertencem ao campo aninhado
func ParseFieldSet(csv string, known FieldSet) (FieldSet, error) {
	var fields FieldSet
	depth, start := 0, 0

	push := func(raw string) {
		if name := strings.TrimSpace(raw); name != "" {
			fields = append(fields, Field(name))
		}
	}

	for i, r := range csv {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				push(csv[start:i])
				start = i + 1
			}
		}
	}
	push(csv[start:])

	if depth != 0 {
		return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Unbalanced braces in fields: %s", csv)
	}

	if err := fields.Validate(known); err != nil {
		return nil, err
	}

	return fields, nil
}

var (
	AccountListFields = FieldSet{"id", "account_id", "name", "account_status", "amount_spent", "balance", "currency", "spend_cap", "business_name"}
	AccountGetFields  = AccountListFields.With("business_city", "business_country_code")

	CampaignListFields = FieldSet{"id", "name", "status", "effective_status", "objective", "created_time", "updated_time", "daily_budget", "lifetime_budget", "budget_remaining"}
	CampaignGetFields  = CampaignListFields.With("start_time", "stop_time", "special_ad_categories")

	AdSetListFields     = FieldSet{"id", "name", "campaign_id", "status", "effective_status", "created_time", "updated_time", "daily_budget", "lifetime_budget", "budget_remaining", "billing_event", "optimization_goal"}
	AdSetDeliveryFields = FieldSet{"learning_phase_info", "issues_info"}
	AdSetGetFields      = FieldSet{"id", "name", "campaign_id", "status", "effective_status", "created_time", "updated_time", "start_time", "end_time", "daily_budget", "lifetime_budget", "budget_remaining", "billing_event", "optimization_goal", "bid_strategy", "bid_amount", "targeting"}

	AdListFields     = FieldSet{"id", "name", "adset_id", "campaign_id", "status", "effective_status", "created_time", "updated_time", "preview_shareable_link"}
	AdDeliveryFields = FieldSet{"issues_info"}
	AdCreativeField  = Field("creative{id,name,title,body,image_url,video_id,thumbnail_url,call_to_action_type,object_story_spec}")
	AdGetFields      = FieldSet{"id", "name", "adset_id", "campaign_id", "status", "effective_status", "created_time", "updated_time", "creative", "preview_shareable_link"}

	CreativeListFields = FieldSet{"id", "name", "title", "body", "image_hash", "image_url", "video_id", "thumbnail_url", "call_to_action_type"}
	CreativeGetFields  = CreativeListFields.With("object_story_spec")

	ImageListFields = FieldSet{"hash", "name", "url", "width", "height", "created_time"}

	VideoListFields = FieldSet{"id", "title", "source", "picture", "created_time", "updated_time", "length"}
	VideoGetFields  = VideoListFields.With("status")

	// EntityStateFields alimenta o filtro active-only e os campos de contexto
	EntityStateFields = FieldSet{"id", "effective_status", "daily_budget", "lifetime_budget"}
)

// knownFields é o catálogo aceito em --fields por tipo de entidade
var knownFields = map[EntityKind]FieldSet{
	KindAccount:  AccountGetFields.With("timezone_name", "age", "disable_reason", "funding_source", "owner", "min_daily_budget"),
	KindCampaign: CampaignGetFields.With("account_id", "bid_strategy", "buying_type", "configured_status", "spend_cap", "source_campaign_id", "issues_info"),
	KindAdSet:    AdSetGetFields.With(AdSetDeliveryFields...).With("account_id", "configured_status", "destination_type", "promoted_object", "attribution_spec", "pacing_type"),
	KindAd:       AdGetFields.With(AdDeliveryFields...).With("account_id", "configured_status", "tracking_specs", "conversion_specs", "bid_amount"),
	KindCreative: CreativeGetFields.With("account_id", "status", "object_type", "url_tags", "asset_feed_spec", "instagram_permalink_url"),
	KindImage:    ImageListFields.With("id", "account_id", "permalink_url", "status", "updated_time", "original_width", "original_height"),
	KindVideo:    VideoGetFields.With("description", "permalink_url", "embed_html", "format"),
}

// FieldsFor retorna o catálogo de campos conhecidos de uma entidade
func FieldsFor(kind EntityKind) FieldSet {
	return knownFields[kind]
}
