package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"madison/infras/otel"
	"madison/internal/domains/auth/model/dto"
	"madison/internal/domains/auth/service"
	"madison/shared/constant"
	"madison/shared/validator"
	"madison/transport/http/response"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.Post("/change-password", handler.ChangePassword)
	})
}

func (handler *Handler) newScope(r *http.Request, op string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user with the provided details.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "Register")
	defer scope.End()

	req := dto.RegisterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		fail(w, scope, err, "failed to register user")

		return
	}

	scope.AddEvent("User registered successfully")
	response.WithMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user login
// @Summary Login a user
// @Description Login a user with the provided credentials.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to login user")

		return
	}

	scope.AddEvent("User logged in successfully")
	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh user token
// @Description Refresh user token using the provided refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.RefreshTokenResponse "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to refresh token")

		return
	}

	scope.AddEvent("Token refreshed successfully")
	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword handles password changes for the authenticated user
// @Summary Change password
// @Description Change the password of the currently authenticated user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		fail(w, scope, err, "failed to change password")

		return
	}

	scope.AddEvent("Password changed successfully")
	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
