package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/request"
	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/response"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/pkg/httputil"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Email:       result.Admin.Email,
	})
}
