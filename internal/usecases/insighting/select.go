package insighting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// SelectTopBottom mantém os N primeiros e/ou os N últimos. Com os dois, a fatia top vem primeiro
// e itens repetidos são descartados pela chave da entidade (ID mais valores de breakdown);
// registros sem ID usam a posição como chave
func SelectTopBottom(items []domain.FlatInsight, level domain.Level, top, bottom int) []domain.FlatInsight {
	if top <= 0 && bottom <= 0 {
		return items
	}

	indexes := make([]int, 0)
	if top > 0 {
		for i := 0; i < top && i < len(items); i++ {
			indexes = append(indexes, i)
		}
	}
	if bottom > 0 {
		start := len(items) - bottom
		if start < 0 {
			start = 0
		}
		for i := start; i < len(items); i++ {
			indexes = append(indexes, i)
		}
	}

	seen := make(map[string]struct{}, len(indexes))
	out := make([]domain.FlatInsight, 0, len(indexes))
	for _, i := range indexes {
		key := dedupeKey(&items[i], level, i)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, items[i])
	}
	return out
}

func dedupeKey(item *domain.FlatInsight, level domain.Level, index int) string {
	id, _ := item.Entity(level)
	if id == "" {
		return "#" + strconv.Itoa(index)
	}
	if len(item.Dimensions) == 0 {
		return id
	}

	dims := make([]string, 0, len(item.Dimensions))
	for k, v := range item.Dimensions {
		dims = append(dims, k+"="+v)
	}
	sort.Strings(dims)
	return id + "|" + strings.Join(dims, "|")
}
