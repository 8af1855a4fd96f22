package meta

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages simula N páginas de K itens e conta as chamadas
func fakePages(n, k int, calls *int) PageFetcher[string] {
	return func(ctx context.Context, cursor string) (*Page[string], error) {
		index := 0
		if cursor != "" {
			fmt.Sscanf(cursor, "c%d", &index)
		}
		*calls++

		page := &Page[string]{}
		for i := 0; i < k; i++ {
			page.Data = append(page.Data, fmt.Sprintf("p%d-%d", index, i))
		}
		if index+1 < n {
			page.NextCursor = fmt.Sprintf("c%d", index+1)
		}
		return page, nil
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name      string
		pages     int
		size      int
		maxPages  int
		wantItems int
		wantCalls int
	}{
		{name: "limite acima do total", pages: 3, size: 2, maxPages: 10, wantItems: 6, wantCalls: 3},
		{name: "limite igual ao total", pages: 3, size: 2, maxPages: 3, wantItems: 6, wantCalls: 3},
		{name: "limite abaixo do total para mesmo com cursor", pages: 5, size: 2, maxPages: 2, wantItems: 4, wantCalls: 2},
		{name: "limite padrão", pages: 150, size: 1, maxPages: 0, wantItems: DefaultMaxPages, wantCalls: DefaultMaxPages},
		{name: "página única vazia", pages: 1, size: 0, maxPages: 10, wantItems: 0, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			items, err := Walk(context.Background(), fakePages(tt.pages, tt.size, &calls), tt.maxPages)
			require.NoError(t, err)

			assert.Len(t, items, tt.wantItems)
			assert.Equal(t, tt.wantCalls, calls)
			assert.NotNil(t, items)
		})
	}
}

func TestWalkPreservesOrder(t *testing.T) {
	calls := 0
	items, err := Walk(context.Background(), fakePages(3, 2, &calls), 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"p0-0", "p0-1", "p1-0", "p1-1", "p2-0", "p2-1"}, items)
}

func TestWalkDiscardsPartialResultsOnError(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, cursor string) (*Page[string], error) {
		calls++
		if cursor == "" {
			return &Page[string]{Data: []string{"a"}, NextCursor: "next"}, nil
		}
		return nil, assert.AnError
	}

	items, err := Walk(context.Background(), fetch, 10)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Nil(t, items)
	assert.Equal(t, 2, calls)
}
