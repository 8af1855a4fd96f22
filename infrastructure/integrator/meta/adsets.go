package meta

import (
	"context"
	"net/url"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// AdSetListOptions restringe a listagem a uma campanha; sem CampaignID lista a conta
type AdSetListOptions struct {
	domain.ListOptions
	CampaignID      string
	IncludeDelivery bool
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, opts AdSetListOptions) (*domain.ListResult[domain.AdSet], error) {
	endpoint := opts.CampaignID + "/adsets"
	if opts.CampaignID == "" {
		account, err := s.accountID()
		if err != nil {
			return nil, err
		}
		endpoint = account + "/adsets"
	}

	fields := fieldsOrDefault(opts.Fields, domain.AdSetListFields)
	if opts.IncludeDelivery {
		fields = fields.With(domain.AdSetDeliveryFields...)
	}

	params := url.Values{}
	params.Set("fields", fields.String())
	statusFilter(params, "status", opts.Status)

	return list[domain.AdSet](ctx, s.Client, endpoint, params, opts.ListOptions)
}

func (s *MetaIntegrator) GetAdSet(ctx context.Context, id string, fields domain.FieldSet) (*domain.AdSet, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidAdSetID, "")
	}
	return get[domain.AdSet](ctx, s.Client, id, fieldsOrDefault(fields, domain.AdSetGetFields))
}

func (s *MetaIntegrator) CreateAdSet(ctx context.Context, params domain.AdSetCreate) (*domain.AdSet, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("name", params.Name)
	form.Set("campaign_id", params.CampaignID)
	form.Set("billing_event", params.BillingEvent)
	form.Set("optimization_goal", params.OptimizationGoal)
	form.Set("status", defaultStatus(params.Status))
	setIf(form, "daily_budget", params.DailyBudget)
	setIf(form, "lifetime_budget", params.LifetimeBudget)
	setIf(form, "start_time", params.StartTime)
	setIf(form, "end_time", params.EndTime)
	setIf(form, "bid_amount", params.BidAmount)
	if err := setJSON(form, "targeting", params.Targeting); err != nil {
		return nil, err
	}

	id, err := s.mutate(ctx, account+"/adsets", form)
	if err != nil {
		return nil, err
	}
	return s.GetAdSet(ctx, id, nil)
}

func (s *MetaIntegrator) UpdateAdSet(ctx context.Context, id string, params domain.AdSetUpdate) (*domain.AdSet, error) {
	if id == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidAdSetID, "")
	}
	if err := s.validate(params); err != nil {
		return nil, err
	}

	form := url.Values{}
	setPtr(form, "name", params.Name)
	setPtr(form, "status", params.Status)
	setPtr(form, "daily_budget", params.DailyBudget)
	setPtr(form, "lifetime_budget", params.LifetimeBudget)
	setPtr(form, "bid_amount", params.BidAmount)
	setPtr(form, "end_time", params.EndTime)
	if len(form) == 0 {
		return nil, apiErrors.New(apiErrors.ErrMissingRequiredField, "No fields to update.")
	}

	if _, err := s.mutate(ctx, id, form); err != nil {
		return nil, err
	}
	return s.GetAdSet(ctx, id, nil)
}
