package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const uploadField = "files"

// @Summary  	Upload images
// @Description Stores every file under images/YYYY/MM/ and records its metadata. Files are handled one by one; a failed file does not stop the rest
// @Tags 		images
// @Accept 		mpfd
// @Produce 	json
// @Param 		files formData file true "Image files"
// @Success 	201 {object} response.Upload "All files stored"
// @Success 	207 {object} response.Upload "Some files failed"
// @Failure 	400 {object} response.Error "No files or too many files"
// @Failure 	401 {object} response.Error "No session"
// @Router 		/v1/images [post]
func (r *V1) uploadImages(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "multipart form is required")
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "at least one file is required")
	}

	if r.maxFiles > 0 && len(headers) > r.maxFiles {
		return errorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("cant upload more than %d files at once", r.maxFiles))
	}

	// 1. чтение файлов; слишком большие отклоняются сразу
	results := make([]dto.UploadResult, len(headers))
	files := make([]dto.UploadFile, 0, len(headers))
	positions := make([]int, 0, len(headers))

	for i, h := range headers {
		results[i].OriginalName = h.Filename

		if h.Size > r.maxFileSize {
			results[i].Err = errs.ErrFileTooLarge
			continue
		}

		f, err := h.Open()
		if err != nil {
			results[i].Err = fmt.Errorf("h.Open: %w", err)
			continue
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			results[i].Err = fmt.Errorf("io.ReadAll: %w", err)
			continue
		}

		files = append(files, dto.UploadFile{
			OriginalName: h.Filename,
			ContentType:  h.Header.Get(fiber.HeaderContentType),
			Data:         data,
		})
		positions = append(positions, i)
	}

	// 2. загрузка
	for j, res := range r.gallery.Upload(ctx.UserContext(), files) {
		results[positions[j]] = res
	}

	status := http.StatusCreated
	for i := range results {
		if !results[i].OK() {
			results[i].Error = r.uploadErrorMessage(results[i].Err)
			status = http.StatusMultiStatus
		}
	}

	// 3. обновленная страница текущего месяца
	session := currentSession(ctx)

	page, err := r.gallery.Load(ctx.UserContext(), &session.View)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - uploadImages")
	} else {
		r.saveView(ctx, session)
	}

	return ctx.Status(status).JSON(response.Upload{
		Results: results,
		Page:    page,
	})
}

func (r *V1) uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrFileTooLarge):
		return fmt.Sprintf("file size cant be more than %d bytes", r.maxFileSize)
	case errors.Is(err, errs.ErrUnsupportedMediaType):
		return "unsupported file type, only images are allowed"
	case errors.Is(err, errs.ErrObjectExists):
		return "file already exists"
	default:
		return "storage problems"
	}
}

// @Summary 	Delete image
// @Description Removes the object from storage and then its metadata row
// @Tags 		images
// @Param		id 	path	 string true "Image ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	401 {object} response.Error "No session"
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/images/{id} [delete]
func (r *V1) deleteImage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	err = r.gallery.Delete(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "image not found")
		}
		r.logger.Error(err, "restapi - v1 - deleteImage")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}
