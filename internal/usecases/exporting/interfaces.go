package exporting

import (
	"context"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// EntityLister percorre todas as entidades de um tipo, opcionalmente filtradas por status
type EntityLister interface {
	ListAllEntities(ctx context.Context, kind domain.EntityKind, status string) ([]any, error)
}
