package meta

import (
	"context"
	"net/url"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// AdListOptions restringe a listagem a um conjunto ou campanha (nessa ordem); sem ambos lista a conta
type AdListOptions struct {
	domain.ListOptions
	AdSetID         string
	CampaignID      string
	IncludeDelivery bool
	IncludeCreative bool
}

func (s *MetaIntegrator) ListAds(ctx context.Context, opts AdListOptions) (*domain.ListResult[domain.Ad], error) {
	var endpoint string
	switch {
	case opts.AdSetID != "":
		endpoint = opts.AdSetID + "/ads"
	case opts.CampaignID != "":
		endpoint = opts.CampaignID + "/ads"
	default:
		account, err := s.accountID()
		if err != nil {
			return nil, err
		}
		endpoint = account + "/ads"
	}

	fields := fieldsOrDefault(opts.Fields, domain.AdListFields)
	if opts.IncludeDelivery {
		fields = fields.With(domain.AdDeliveryFields...)
	}
	if opts.IncludeCreative {
		fields = fields.With(domain.AdCreativeField)
	}

	params := url.Values{}
	params.Set("fields", fields.String())
	statusFilter(params, "effective_status", opts.Status)

	return list[domain.Ad](ctx, s.Client, endpoint, params, opts.ListOptions)
}

func (s *MetaIntegrator) GetAd(ctx context.Context, id string, fields domain.FieldSet) (*domain.Ad, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidAdID, "")
	}

	if len(fields) == 0 {
		fields = domain.AdGetFields
		// creative sem subcampos devolve só o ID
		for i, f := range fields {
			if f == "creative" {
				fields = append(append(domain.FieldSet{}, fields[:i]...), fields[i+1:]...).With(domain.AdCreativeField)
				break
			}
		}
	}
	return get[domain.Ad](ctx, s.Client, id, fields)
}

func (s *MetaIntegrator) CreateAd(ctx context.Context, params domain.AdCreate) (*domain.Ad, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("adset_id", params.AdSetID)
	form.Set("status", defaultStatus(params.Status))
	if err := setJSON(form, "creative", map[string]string{"creative_id": params.CreativeID}); err != nil {
		return nil, err
	}

	id, err := s.mutate(ctx, account+"/ads", form)
	if err != nil {
		return nil, err
	}
	return s.GetAd(ctx, id, nil)
}

func (s *MetaIntegrator) UpdateAd(ctx context.Context, id string, params domain.AdUpdate) (*domain.Ad, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidAdID, "")
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	setPtr(form, "name", params.Name)
	setPtr(form, "status", params.Status)
	if params.CreativeID != nil {
		if err := setJSON(form, "creative", map[string]string{"creative_id": *params.CreativeID}); err != nil {
			return nil, err
		}
	}
	if len(form) == 0 {
		return nil, apiErrors.New(apiErrors.ErrMissingRequiredField, "No fields to update.")
	}

	if _, err := s.mutate(ctx, id, form); err != nil {
		return nil, err
	}
	return s.GetAd(ctx, id, nil)
}
