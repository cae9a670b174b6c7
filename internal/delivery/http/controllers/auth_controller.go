package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventr/internal/delivery/http/helpers"
	"eventr/internal/delivery/http/middleware"
	"eventr/internal/domain"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// UserResponse is the success envelope carrying a user.
type UserResponse struct {
	Success bool         `json:"success"`
	Data    *domain.User `json:"data"`
}

// LoginResponse is the success envelope for POST /auth/login.
type LoginResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.AuthResponse `json:"data"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewAuthController(logger *slog.Logger, svc domain.UserService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account. The password is never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account details"
// @Success 201 {object} controllers.UserResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 409 {object} helpers.APIResponse "code: duplicate_email"
// @Failure 429 {object} helpers.APIResponse "code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusCreated, res)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns the user and a bearer token bound to a new session.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.APIResponse "code: invalid_input"
// @Failure 401 {object} helpers.APIResponse "code: invalid_credentials"
// @Failure 429 {object} helpers.APIResponse "code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// Logout godoc
// @Summary Log out
// @Description Ends the session of the bearer token, if any. Always succeeds.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "code: internal_error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		helpers.WriteResult(w, http.StatusOK, domain.OK(struct{}{}))
		return
	}
	res, err := c.Service.Logout(r.Context(), token)
	if err != nil {
		writeInternalError(c.Logger, w, r, err)
		return
	}
	helpers.WriteResult(w, http.StatusOK, res)
}

// Me godoc
// @Summary Current user
// @Description Returns the user owning the bearer token's session.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.UserResponse
// @Failure 401 {object} helpers.APIResponse "code: unauthenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		helpers.WriteResult(w, http.StatusOK, domain.Fail[*domain.User](domain.ErrUnauthenticated))
		return
	}
	helpers.WriteResult(w, http.StatusOK, domain.OK(user))
}
