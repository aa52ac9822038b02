package handlers

type PublishVideoParam struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type UpdateVideoParam struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}
