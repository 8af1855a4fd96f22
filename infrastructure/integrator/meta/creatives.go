package meta

import (
	"context"
	"net/url"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func (s *MetaIntegrator) ListCreatives(ctx context.Context, opts domain.ListOptions) (*domain.ListResult[domain.AdCreative], error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fieldsOrDefault(opts.Fields, domain.CreativeListFields).String())

	return list[domain.AdCreative](ctx, s.Client, account+"/adcreatives", params, opts)
}

func (s *MetaIntegrator) GetCreative(ctx context.Context, id string, fields domain.FieldSet) (*domain.AdCreative, error) {
	return get[domain.AdCreative](ctx, s.Client, id, fieldsOrDefault(fields, domain.CreativeGetFields))
}

// CreateCreative aceita o object_story_spec completo ou monta um link_data a partir do atalho page/link
func (s *MetaIntegrator) CreateCreative(ctx context.Context, params domain.AdCreativeCreate) (*domain.AdCreative, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	spec := params.ObjectStorySpec
	if spec == nil {
		linkData := map[string]any{"link": params.Link}
		if params.Message != "" {
			linkData["message"] = params.Message
		}
		if params.ImageHash != "" {
			linkData["image_hash"] = params.ImageHash
		}
		if params.Headline != "" {
			linkData["name"] = params.Headline
		}
		if params.CallToAction != "" {
			linkData["call_to_action"] = map[string]any{
				"type":  params.CallToAction,
				"value": map[string]string{"link": params.Link},
			}
		}
		spec = map[string]any{"page_id": params.PageID, "link_data": linkData}
	}

	form := url.Values{}
	form.Set("name", params.Name)
	if err := setJSON(form, "object_story_spec", spec); err != nil {
		return nil, err
	}

	id, err := s.mutate(ctx, account+"/adcreatives", form)
	if err != nil {
		return nil, err
	}
	return s.GetCreative(ctx, id, nil)
}
