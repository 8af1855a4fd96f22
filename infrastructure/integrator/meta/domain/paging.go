package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// NextCursor retorna o cursor da próxima página, ou "" quando a listagem terminou.
// A Graph API omite "next" na última página mesmo quando ainda devolve cursors.after
func (p *Paging) NextCursor() string {
	if p == nil || p.Next == "" {
		return ""
	}

	return p.Cursors.After
}

// ListResponse é o envelope padrão das arestas de listagem ({data, paging})
type ListResponse[T any] struct {
	Data   []T     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// MutationResponse é a confirmação mínima devolvida por criações e atualizações
type MutationResponse struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success,omitempty"`
}

// ImageUploadResponse é a resposta de {account}/adimages: imagens indexadas pelo nome do arquivo
type ImageUploadResponse struct {
	Images map[string]UploadedImage `json:"images"`
}

type UploadedImage struct {
	Hash   string `json:"hash"`
	URL    string `json:"url"`
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
