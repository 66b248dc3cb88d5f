package response

import (
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/internal/gesture"
)

type Error struct {
	Error string `json:"error" example:"message"`
}

type Session struct {
	Token     string           `json:"token"`
	Email     string           `json:"email"`
	ExpiresAt time.Time        `json:"expires_at"`
	View      entity.ViewState `json:"view"`
}

type Upload struct {
	Results []dto.UploadResult `json:"results"`
	Page    *dto.GalleryPage   `json:"page,omitempty"`
}

type Transitions struct {
	ClickWindowMs int64                `json:"click_window_ms"`
	Transitions   []gesture.Transition `json:"transitions"`
}
