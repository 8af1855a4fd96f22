package domain

type AdImage struct {
	ID          string `json:"id,omitempty"`
	Hash        string `json:"hash"`
	Name        string `json:"name,omitempty"`
	URL         string `json:"url,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	CreatedTime string `json:"created_time,omitempty"`
}
