package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
)

const shotDateLayout = "2006-01-02"

type PhotoResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Caption   *string    `json:"caption,omitempty"`
	Tags      []string   `json:"tags"`
	ShotDate  string     `json:"shot_date"`
	ImageURL  string     `json:"image_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FeedResponse is one page of the public feed. A batch shorter than the
// requested limit is the exhaustion signal; there is no has_more flag.
type FeedResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

type AdminListResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

type OverviewResponse struct {
	Active []PhotoResponse `json:"active"`
	Trash  []PhotoResponse `json:"trash"`
}

func PhotoFromEntity(p *entity.Photo) PhotoResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PhotoResponse{
		ID:        p.ID,
		Title:     p.Title,
		Caption:   p.Caption,
		Tags:      tags,
		ShotDate:  p.ShotDate.Format(shotDateLayout),
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: p.DeletedAt,
	}
}

func PhotosFromEntities(photos []entity.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, PhotoFromEntity(&photos[i]))
	}
	return out
}
