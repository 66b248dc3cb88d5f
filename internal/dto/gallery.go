package dto

import "github.com/andreyxaxa/Photo-Gallery/internal/entity"

type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// GalleryPage is one month of the gallery plus the pager state.
type GalleryPage struct {
	Month     entity.Month         `json:"month"`
	Label     string               `json:"label"`
	Images    []entity.ImageRecord `json:"images"`
	Available []entity.Month       `json:"available"`
	Prev      *entity.Month        `json:"prev,omitempty"`
	Next      *entity.Month        `json:"next,omitempty"`
	ShowPager bool                 `json:"show_pager"`
}
