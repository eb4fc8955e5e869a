package request

type ListFeedRequest struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type AdminListRequest struct {
	Scope string `form:"scope" binding:"omitempty,oneof=active trash"`
}

// UpdatePhotoRequest carries the editable metadata. ShotDate is a bare
// calendar date.
type UpdatePhotoRequest struct {
	Title    string   `json:"title" binding:"required,max=255"`
	Caption  string   `json:"caption"`
	Tags     []string `json:"tags"`
	ShotDate string   `json:"shot_date" binding:"required"`
}
