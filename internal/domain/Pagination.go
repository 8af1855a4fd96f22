package domain

// DefaultPageSize é o limite enviado quando o chamador não informa --limit
const DefaultPageSize = 25

// WalkPageSize é o tamanho de página usado quando todas as páginas são percorridas
const WalkPageSize = 100

// ListOptions são os filtros comuns a todas as listagens
type ListOptions struct {
	Limit  int
	After  string
	All    bool
	Fields FieldSet
	Status string
}

// PaginationMeta é exposto em meta.pagination quando a listagem não foi esgotada
type PaginationMeta struct {
	HasNext bool   `json:"has_next"`
	Cursor  string `json:"cursor,omitempty"`
}

// ListResult é o resultado tipado de uma listagem
type ListResult[T any] struct {
	Data   []T
	Paging *PaginationMeta
}
