package insighting

import (
	"strings"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// ActionMatcher resolve o resultado principal de um registro a partir de uma lista de prioridade.
// Cada tipo lógico casa com o nome puro e com as formas qualificadas (offsite_conversion.fb_pixel_<t>, onsite_web_<t>)
type ActionMatcher struct {
	priority []string
	names    map[string][]string
}

func NewActionMatcher(priority []string) *ActionMatcher {
	m := &ActionMatcher{
		priority: append([]string{}, priority...),
		names:    make(map[string][]string, len(priority)),
	}
	for _, actionType := range priority {
		m.names[actionType] = qualifiedNames(actionType)
	}
	return m
}

// DefaultMatcher usa a prioridade padrão de conversões
func DefaultMatcher() *ActionMatcher {
	return NewActionMatcher(domain.ConversionActions)
}

func qualifiedNames(actionType string) []string {
	names := []string{actionType}
	for _, prefix := range domain.ActionAliasPrefixes {
		names = append(names, prefix+actionType)
	}
	return names
}

// Preferring devolve um matcher com actionType no topo da prioridade
func (m *ActionMatcher) Preferring(actionType string) *ActionMatcher {
	if actionType == "" || (len(m.priority) > 0 && m.priority[0] == actionType) {
		return m
	}

	priority := []string{actionType}
	for _, t := range m.priority {
		if t != actionType {
			priority = append(priority, t)
		}
	}
	return NewActionMatcher(priority)
}

// ForObjective prioriza a ação associada ao objetivo da campanha, quando conhecido
func (m *ActionMatcher) ForObjective(objective string) *ActionMatcher {
	actionType, ok := domain.ObjectiveToAction[strings.ToUpper(objective)]
	if !ok {
		return m
	}
	return m.Preferring(actionType)
}

// Priority retorna a lista de prioridade efetiva
func (m *ActionMatcher) Priority() []string {
	return m.priority
}

// Find retorna a primeira entrada, na ordem do registro, que representa o tipo lógico informado
func (m *ActionMatcher) Find(entries []domain.Action, actionType string) (domain.Action, bool) {
	names, ok := m.names[actionType]
	if !ok {
		names = qualifiedNames(actionType)
	}

	for _, entry := range entries {
		if strings.TrimSpace(entry.Value) == "" {
			continue
		}
		for _, name := range names {
			if entry.ActionType == name {
				return entry, true
			}
		}
	}
	return domain.Action{}, false
}

// Match percorre a prioridade e retorna o primeiro tipo presente em actions
func (m *ActionMatcher) Match(actions []domain.Action) (string, domain.Action, bool) {
	for _, actionType := range m.priority {
		if entry, ok := m.Find(actions, actionType); ok {
			return actionType, entry, true
		}
	}
	return domain.ResultTypeNone, domain.Action{}, false
}
