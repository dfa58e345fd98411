package handler

import (
	"net/http"

	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/response"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
}

// TestHandler serves development-only helpers. It is registered in the develop environment only.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{tokenSvc: params.TokenSvc}
}

// IssueTokenRequest asks for an access token of a user, a random one when empty
type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// IssueToken signs an access token so the API can be exercised without an identity provider
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	token, err := h.tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id":      userID.String(),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// WhoAmI echoes the authenticated user
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": userID.String()})
}
