package insighting

import (
	"context"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// InsightsFetcher busca registros brutos de insights
type InsightsFetcher interface {
	GetInsights(ctx context.Context, q domain.InsightsQuery) ([]domain.Insight, error)
}

// EntityStateLister lista o estado de entrega das entidades de um nível, indexado por ID
type EntityStateLister interface {
	ListEntityStates(ctx context.Context, level domain.Level) (map[string]domain.EntityState, error)
}

// Repository é o que o serviço de insights precisa do repositório de entidades
type Repository interface {
	InsightsFetcher
	EntityStateLister
}
