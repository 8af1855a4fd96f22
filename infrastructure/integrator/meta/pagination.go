package meta

import (
	"context"

	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// DefaultMaxPages limita o custo de uma listagem completa contra conjuntos remotos sem fim
const DefaultMaxPages = 100

// Page é uma página retornada pelo fetcher; NextCursor vazio encerra o percurso
type Page[T any] struct {
	Data       []T
	NextCursor string
}

// PageFetcher busca a página do cursor informado ("" para a primeira)
type PageFetcher[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// Walk segue os cursores até o fim ou até maxPages páginas, concatenando os dados na ordem do servidor.
// Qualquer falha descarta o que já foi lido
func Walk[T any](ctx context.Context, fetch PageFetcher[T], maxPages int) ([]T, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	all := make([]T, 0)
	cursor := ""

	for pages := 1; ; pages++ {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Data...)

		if page.NextCursor == "" {
			return all, nil
		}

		if pages >= maxPages {
			log.ForContext(ctx).WithFields(log.Fields{
				"max_pages": maxPages,
				"items":     len(all),
			}).Warn("Limite de páginas atingido, listagem truncada")
			return all, nil
		}

		cursor = page.NextCursor
	}
}
