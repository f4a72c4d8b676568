package api

// CreatePostRequest doubles as the update body: PUT overwrites the same
// three mutable fields. Published defaults to true when omitted.
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published,omitempty"`
}

func (r *CreatePostRequest) PublishedOrDefault() bool {
	if r.Published == nil {
		return true
	}
	return *r.Published
}
