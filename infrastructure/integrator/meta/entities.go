package meta

import (
	"context"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

// GetEntity busca campanha, conjunto ou anúncio pelo tipo
func (s *MetaIntegrator) GetEntity(ctx context.Context, kind domain.EntityKind, id string) (domain.StatusEntity, error) {
	switch kind {
	case domain.KindCampaign:
		return s.GetCampaign(ctx, id, nil)
	case domain.KindAdSet:
		return s.GetAdSet(ctx, id, nil)
	case domain.KindAd:
		return s.GetAd(ctx, id, nil)
	}
	return nil, unsupportedKind(kind)
}

// UpdateEntityStatus altera o status e devolve a entidade recarregada
func (s *MetaIntegrator) UpdateEntityStatus(ctx context.Context, kind domain.EntityKind, id, status string) (domain.StatusEntity, error) {
	switch kind {
	case domain.KindCampaign:
		return s.UpdateCampaign(ctx, id, domain.CampaignUpdate{Status: &status})
	case domain.KindAdSet:
		return s.UpdateAdSet(ctx, id, domain.AdSetUpdate{Status: &status})
	case domain.KindAd:
		return s.UpdateAd(ctx, id, domain.AdUpdate{Status: &status})
	}
	return nil, unsupportedKind(kind)
}

// ListAllEntities percorre todas as páginas do tipo, opcionalmente filtrando pelo status
func (s *MetaIntegrator) ListAllEntities(ctx context.Context, kind domain.EntityKind, status string) ([]any, error) {
	opts := domain.ListOptions{All: true, Status: status}

	switch kind {
	case domain.KindCampaign:
		result, err := s.ListCampaigns(ctx, opts)
		if err != nil {
			return nil, err
		}
		return toAny(result.Data), nil
	case domain.KindAdSet:
		result, err := s.ListAdSets(ctx, AdSetListOptions{ListOptions: opts})
		if err != nil {
			return nil, err
		}
		return toAny(result.Data), nil
	case domain.KindAd:
		result, err := s.ListAds(ctx, AdListOptions{ListOptions: opts})
		if err != nil {
			return nil, err
		}
		return toAny(result.Data), nil
	}
	return nil, unsupportedKind(kind)
}

func toAny[T any](items []T) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func unsupportedKind(kind domain.EntityKind) error {
	return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid type %q: must be campaign, adset or ad.", kind)
}
