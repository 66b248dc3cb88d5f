package v1

import (
	"net/http"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	Load gallery month
// @Description Lists images of the viewed month, optionally jumping to ?month=YYYY-MM first
// @Tags 		gallery
// @Produce 	json
// @Param 		month query string false "Month (YYYY-MM)"
// @Success 	200 {object} dto.GalleryPage
// @Failure 	400 {object} response.Error "Invalid month"
// @Failure 	401 {object} response.Error "No session"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/gallery [get]
func (r *V1) loadGallery(ctx *fiber.Ctx) error {
	session := currentSession(ctx)

	if q := ctx.Query("month"); q != "" {
		month, err := entity.ParseMonth(q)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "month must look like 2025-07")
		}

		session.View.Current = month
	}

	page, err := r.gallery.Load(ctx.UserContext(), &session.View)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - loadGallery")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	r.saveView(ctx, session)

	return ctx.Status(http.StatusOK).JSON(page)
}

// @Summary 	Previous month
// @Tags 		gallery
// @Produce 	json
// @Success 	200 {object} dto.GalleryPage
// @Failure 	401 {object} response.Error "No session"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/gallery/prev [post]
func (r *V1) prevMonth(ctx *fiber.Ctx) error {
	return r.navigate(ctx, dto.Previous)
}

// @Summary 	Next month
// @Tags 		gallery
// @Produce 	json
// @Success 	200 {object} dto.GalleryPage
// @Failure 	401 {object} response.Error "No session"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/gallery/next [post]
func (r *V1) nextMonth(ctx *fiber.Ctx) error {
	return r.navigate(ctx, dto.Next)
}

func (r *V1) navigate(ctx *fiber.Ctx, direction dto.Direction) error {
	session := currentSession(ctx)

	page, err := r.gallery.Navigate(ctx.UserContext(), &session.View, direction)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - navigate")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	r.saveView(ctx, session)

	return ctx.Status(http.StatusOK).JSON(page)
}

// saveView persists the view state; a failure only costs the position.
func (r *V1) saveView(ctx *fiber.Ctx, session *entity.Session) {
	err := r.auth.SaveView(ctx.UserContext(), session)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - saveView")
	}
}
