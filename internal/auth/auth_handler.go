package auth

import (
	"net/http"

	"go-empdir/internal/shared/apperror"
	"go-empdir/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Authenticate(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("authenticate binding failed", zap.Error(err))
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	token, err := h.service.Authenticate(c.Request.Context(), req.Email)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("authenticate failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}

	response.JSON(c, http.StatusOK, AuthResponse{Token: token})
}
