package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/i18n"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
)

// Labels returns every UI label and error message in the negotiated locale.
func Labels(c *gin.Context) {
	lang := middleware.Locale(c)
	c.JSON(http.StatusOK, gin.H{
		"locale": lang,
		"labels": i18n.Bundle(lang),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
