package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/i18n"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	ucauth "github.com/BruksfildServices01/appointment-manager/internal/usecase/auth"
)

type AuthHandler struct {
	login    *ucauth.Login
	fallback *time.Location
}

func NewAuthHandler(login *ucauth.Login, fallback *time.Location) *AuthHandler {
	return &AuthHandler{login: login, fallback: fallback}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	loc := requestLocation(c, h.fallback)

	res, err := h.login.Execute(c.Request.Context(), ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Location: loc,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"user": gin.H{
			"id":       res.User.ID,
			"username": res.User.Username,
		},
		"token":      res.Token,
		"expires_at": res.ExpiresAt.UTC(),
		"upcoming":   res.Upcoming,
	}
	if res.Upcoming != nil {
		body["alert"] = i18n.T(middleware.Locale(c), "login.upcoming")
	}

	c.JSON(http.StatusOK, body)
}
