package domain

type AdCreative struct {
	ID               string         `json:"id"`
	Name             string         `json:"name,omitempty"`
	Title            string         `json:"title,omitempty"`
	Body             string         `json:"body,omitempty"`
	ImageHash        string         `json:"image_hash,omitempty"`
	ImageURL         string         `json:"image_url,omitempty"`
	VideoID          string         `json:"video_id,omitempty"`
	ThumbnailURL     string         `json:"thumbnail_url,omitempty"`
	CallToActionType string         `json:"call_to_action_type,omitempty"`
	ObjectStorySpec  map[string]any `json:"object_story_spec,omitempty"`
}

// AdCreativeCreate aceita um object_story_spec completo ou o atalho de link com imagem
type AdCreativeCreate struct {
	Name            string         `validate:"required"`
	ObjectStorySpec map[string]any `validate:"required_without=PageID"`
	PageID          string         `validate:"required_without=ObjectStorySpec"`
	Link            string         `validate:"required_with=PageID"`
	Message         string
	ImageHash       string
	Headline        string
	CallToAction    string
}
