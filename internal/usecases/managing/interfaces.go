package managing

import (
	"context"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// EntityStore é o acesso a campanhas, conjuntos e anúncios necessário para alterar status
type EntityStore interface {
	GetEntity(ctx context.Context, kind domain.EntityKind, id string) (domain.StatusEntity, error)
	UpdateEntityStatus(ctx context.Context, kind domain.EntityKind, id, status string) (domain.StatusEntity, error)
}
