package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type UserReader interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type MeHandler struct {
	users UserReader
}

func NewMeHandler(users UserReader) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"active":     user.Active,
			"created_at": user.CreatedAt,
		},
		"locale": middleware.Locale(c),
	})
}
