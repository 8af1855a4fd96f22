package domain

type AdVideo struct {
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Source      string         `json:"source,omitempty"`
	Picture     string         `json:"picture,omitempty"`
	CreatedTime string         `json:"created_time,omitempty"`
	UpdatedTime string         `json:"updated_time,omitempty"`
	Length      float64        `json:"length,omitempty"`
	Status      map[string]any `json:"status,omitempty"`
}

// VideoUpload é a origem do vídeo: arquivo local ou URL pública (exclusivos)
type VideoUpload struct {
	Name     string `validate:"omitempty"`
	FilePath string `validate:"required_without=FileURL,excluded_with=FileURL"`
	FileURL  string `validate:"required_without=FilePath"`
}
