package meta

import (
	"context"
	"net/url"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, opts domain.ListOptions) (*domain.ListResult[domain.Campaign], error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("fields", fieldsOrDefault(opts.Fields, domain.CampaignListFields).String())
	statusFilter(params, "status", opts.Status)

	return list[domain.Campaign](ctx, s.Client, account+"/campaigns", params, opts)
}

func (s *MetaIntegrator) GetCampaign(ctx context.Context, id string, fields domain.FieldSet) (*domain.Campaign, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidCampaignID, "")
	}
	return get[domain.Campaign](ctx, s.Client, id, fieldsOrDefault(fields, domain.CampaignGetFields))
}

// CreateCampaign cria a campanha pausada por padrão e devolve o objeto recarregado
func (s *MetaIntegrator) CreateCampaign(ctx context.Context, params domain.CampaignCreate) (*domain.Campaign, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("objective", params.Objective)
	form.Set("status", defaultStatus(params.Status))
	setIf(form, "daily_budget", params.DailyBudget)
	setIf(form, "lifetime_budget", params.LifetimeBudget)
	setIf(form, "bid_strategy", params.BidStrategy)

	categories := params.SpecialAdCategories
	if categories == nil {
		categories = []string{}
	}
	if err := setJSON(form, "special_ad_categories", categories); err != nil {
		return nil, err
	}

	id, err := s.mutate(ctx, account+"/campaigns", form)
	if err != nil {
		return nil, err
	}
	return s.GetCampaign(ctx, id, nil)
}

func (s *MetaIntegrator) UpdateCampaign(ctx context.Context, id string, params domain.CampaignUpdate) (*domain.Campaign, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidCampaignID, "")
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	setPtr(form, "name", params.Name)
	setPtr(form, "status", params.Status)
	setPtr(form, "daily_budget", params.DailyBudget)
	setPtr(form, "lifetime_budget", params.LifetimeBudget)
	setPtr(form, "bid_strategy", params.BidStrategy)
	if len(form) == 0 {
		return nil, apiErrors.New(apiErrors.ErrMissingRequiredField, "No fields to update.")
	}

	if _, err := s.mutate(ctx, id, form); err != nil {
		return nil, err
	}
	return s.GetCampaign(ctx, id, nil)
}
