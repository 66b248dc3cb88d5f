package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi/v1/request"
	"github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "gallery_session"

	sessionLocal = "session"
	bearerPrefix = "Bearer "
)

// @Summary 	Sign in
// @Description Checks email and password and opens a session
// @Tags 		auth
// @Accept 		json
// @Produce 	json
// @Param 		request body request.Login true "Credentials"
// @Success 	200 {object} response.Session
// @Failure 	400 {object} response.Error "Invalid request body"
// @Failure 	401 {object} response.Error "Invalid credentials"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/auth/login [post]
func (r *V1) login(ctx *fiber.Ctx) error {
	var body request.Login

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := r.v.Struct(body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "valid email and password are required")
	}

	session, err := r.auth.SignIn(ctx.UserContext(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return errorResponse(ctx, http.StatusUnauthorized, "invalid email or password")
		}
		r.logger.Error(err, "restapi - v1 - login")

		return errorResponse(ctx, http.StatusInternalServerError, "auth problems")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Status(http.StatusOK).JSON(sessionResponse(session))
}

// @Summary 	Sign out
// @Tags 		auth
// @Success 	204 "Signed out"
// @Failure 	401 {object} response.Error "No session"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/auth/logout [post]
func (r *V1) logout(ctx *fiber.Ctx) error {
	session := currentSession(ctx)

	err := r.auth.SignOut(ctx.UserContext(), session.Token)
	if err != nil && !errors.Is(err, errs.ErrSessionNotFound) {
		r.logger.Error(err, "restapi - v1 - logout")

		return errorResponse(ctx, http.StatusInternalServerError, "auth problems")
	}

	ctx.ClearCookie(SessionCookie)

	return ctx.SendStatus(http.StatusNoContent)
}

// @Summary 	Current session
// @Tags 		auth
// @Produce 	json
// @Success 	200 {object} response.Session
// @Failure 	401 {object} response.Error "No session"
// @Router 		/v1/auth/session [get]
func (r *V1) session(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(sessionResponse(currentSession(ctx)))
}

// requireSession resolves the session from the cookie or a bearer token.
func (r *V1) requireSession(ctx *fiber.Ctx) error {
	token := ctx.Cookies(SessionCookie)
	if token == "" {
		if h := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, bearerPrefix) {
			token = strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
		}
	}

	session, err := r.auth.Session(ctx.UserContext(), token)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			return errorResponse(ctx, http.StatusUnauthorized, "sign in required")
		}
		r.logger.Error(err, "restapi - v1 - requireSession")

		return errorResponse(ctx, http.StatusInternalServerError, "auth problems")
	}

	ctx.Locals(sessionLocal, session)

	return ctx.Next()
}

func currentSession(ctx *fiber.Ctx) *entity.Session {
	session, _ := ctx.Locals(sessionLocal).(*entity.Session)

	return session
}

func sessionResponse(s *entity.Session) response.Session {
	return response.Session{
		Token:     s.Token,
		Email:     s.Email,
		ExpiresAt: s.ExpiresAt,
		View:      s.View,
	}
}
