package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hireloop/hireloop/internal/middleware"
	appErr "github.com/hireloop/hireloop/internal/pkg/errors"
	"github.com/hireloop/hireloop/internal/pkg/response"
)

func getUserEmail(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserEmailKey)
	email, _ := value.(string)
	return email
}

func getUserRole(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserRoleKey)
	role, _ := value.(string)
	return role
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, appErr.ErrForbidden):
		response.Error(c, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, appErr.ErrProfileIncomplete):
		response.Error(c, http.StatusNotFound, "profile_incomplete", "candidate profile or skills not found")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid", err.Error())
	case errors.Is(err, appErr.ErrConflict):
		response.Error(c, http.StatusConflict, "conflict", "conflict")
	case errors.Is(err, appErr.ErrModelUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "model_unavailable", "similarity ranking is not available")
	default:
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
