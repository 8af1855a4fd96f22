package managing

import (
	"context"
	"strings"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

const (
	ReasonAlreadyActive = "already_active"
	ReasonAlreadyPaused = "already_paused"
	ReasonStatusChanged = "status_changed"
)

// StatusChange é o resultado de activate/pause de uma entidade
type StatusChange struct {
	Entity  domain.StatusEntity `json:"entity"`
	Changed bool                `json:"changed"`
	Reason  string              `json:"reason"`
}

// BulkItem é o resultado de uma entidade numa operação em lote
type BulkItem struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

// BulkResult agrega os resultados por ID de bulk activate/pause
type BulkResult struct {
	Status    string     `json:"status"`
	Type      string     `json:"type"`
	Total     int        `json:"total"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Changed   int        `json:"changed"`
	Results   []BulkItem `json:"results"`
}

type StatusService interface {
	SetStatus(ctx context.Context, kind domain.EntityKind, id, status string) (*StatusChange, error)
	BulkSetStatus(ctx context.Context, kind domain.EntityKind, ids []string, status string) (*BulkResult, error)
}

type Service struct {
	store EntityStore
}

func NewService(store EntityStore) StatusService {
	return &Service{store: store}
}

// SetStatus só chama a API quando o status atual difere do pedido
func (s *Service) SetStatus(ctx context.Context, kind domain.EntityKind, id, status string) (*StatusChange, error) {
	if err := validateTarget(kind, status); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apiErrors.New(invalidIDCode(kind), "").WithDetail("type", string(kind))
	}

	current, err := s.store.GetEntity(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if current.GetStatus() == status {
		log.ForContext(ctx).WithFields(log.Fields{
			"type":   kind,
			"id":     id,
			"status": status,
		}).Debug("Entidade já está no status pedido")
		return &StatusChange{Entity: current, Changed: false, Reason: unchangedReason(status)}, nil
	}

	updated, err := s.store.UpdateEntityStatus(ctx, kind, id, status)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"type": kind,
		"id":   id,
		"from": current.GetStatus(),
		"to":   status,
	}).Info("Status alterado")

	return &StatusChange{Entity: updated, Changed: true, Reason: ReasonStatusChanged}, nil
}

// BulkSetStatus aplica SetStatus a cada ID em sequência; falhas individuais não interrompem o lote
func (s *Service) BulkSetStatus(ctx context.Context, kind domain.EntityKind, ids []string, status string) (*BulkResult, error) {
	if err := validateTarget(kind, status); err != nil {
		return nil, err
	}

	ids = splitIDs(ids)
	if len(ids) == 0 {
		return nil, apiErrors.New(apiErrors.ErrMissingRequiredField, "At least one ID is required (--ids).").WithDetail("field", "ids")
	}

	result := &BulkResult{
		Status:  status,
		Type:    string(kind),
		Total:   len(ids),
		Results: make([]BulkItem, 0, len(ids)),
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, apiErrors.FromError(err)
		}

		change, err := s.SetStatus(ctx, kind, id, status)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("id", id).Warn("Falha ao alterar status no lote")
			result.Failed++
			result.Results = append(result.Results, BulkItem{ID: id, Error: apiErrors.FromError(err).Message})
			continue
		}

		result.Succeeded++
		if change.Changed {
			result.Changed++
		}
		result.Results = append(result.Results, BulkItem{ID: id, Success: true, Changed: change.Changed})
	}

	return result, nil
}

func validateTarget(kind domain.EntityKind, status string) error {
	switch kind {
	case domain.KindCampaign, domain.KindAdSet, domain.KindAd:
	default:
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid type %q: must be campaign, adset or ad.", kind).WithDetail("field", "type")
	}
	if status != domain.StatusActive && status != domain.StatusPaused {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid status %q: must be ACTIVE or PAUSED.", status).WithDetail("field", "status")
	}
	return nil
}

func unchangedReason(status string) string {
	if status == domain.StatusActive {
		return ReasonAlreadyActive
	}
	return ReasonAlreadyPaused
}

func invalidIDCode(kind domain.EntityKind) string {
	switch kind {
	case domain.KindCampaign:
		return apiErrors.ErrInvalidCampaignID
	case domain.KindAdSet:
		return apiErrors.ErrInvalidAdSetID
	}
	return apiErrors.ErrInvalidAdID
}

// splitIDs aceita tanto "a,b" quanto IDs repetidos, removendo vazios e duplicados
func splitIDs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, id := range strings.Split(item, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
