package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Photo is a single gallery entry. ImagePath is the object store key of the
// underlying blob and never changes after creation; ImageURL is resolved from
// it at read time and is not persisted.
type Photo struct {
	ID        uuid.UUID
	Title     string
	Caption   *string
	Tags      []string
	ShotDate  time.Time
	ImagePath string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (p *Photo) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Metadata carries the caller-editable fields of a Photo.
type Metadata struct {
	Title    string
	Caption  string
	Tags     []string
	ShotDate time.Time
}

// Normalize trims the title, drops a blank caption entirely (a whitespace-only
// caption is stored as NULL, not as an empty string) and trims each tag,
// discarding tags that are empty after trimming. Tag values are kept whole;
// no splitting happens inside a tag.
func (m Metadata) Normalize() Metadata {
	out := Metadata{
		Title:    strings.TrimSpace(m.Title),
		Caption:  strings.TrimSpace(m.Caption),
		ShotDate: m.ShotDate,
	}
	for _, tag := range m.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			out.Tags = append(out.Tags, t)
		}
	}
	return out
}

// CaptionPtr returns the caption as stored: nil when absent.
func (m Metadata) CaptionPtr() *string {
	if m.Caption == "" {
		return nil
	}
	c := m.Caption
	return &c
}

func NewPhoto(meta Metadata, imagePath string) *Photo {
	meta = meta.Normalize()
	return &Photo{
		ID:        uuid.New(),
		Title:     meta.Title,
		Caption:   meta.CaptionPtr(),
		Tags:      meta.Tags,
		ShotDate:  meta.ShotDate,
		ImagePath: imagePath,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
