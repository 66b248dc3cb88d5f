package v1

import (
	"embed"
	"net/http"

	"github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Photo-Gallery/internal/gesture"
	"github.com/gofiber/fiber/v2"
)

var (
	//go:embed web/index.html
	webFiles embed.FS
)

func (r *V1) showUI(ctx *fiber.Ctx) error {
	file, err := webFiles.ReadFile("web/index.html")
	if err != nil {
		r.logger.Error(err, "restapi - v1 - showUI")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with load UI")
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	return ctx.Send(file)
}

// @Summary 	UI gesture table
// @Description Transitions the page runs for drag-and-drop and click handling
// @Tags 		ui
// @Produce 	json
// @Success 	200 {object} response.Transitions
// @Router 		/v1/ui/transitions [get]
func (r *V1) transitions(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(response.Transitions{
		ClickWindowMs: gesture.ClickWindow.Milliseconds(),
		Transitions:   gesture.Table(),
	})
}
