package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/domain/customer"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/i18n"
	"github.com/BruksfildServices01/appointment-manager/internal/logger"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	"github.com/BruksfildServices01/appointment-manager/internal/usecase/auth"
)

const (
	codeInvalidRequest     = "invalid_request"
	codeStorageUnavailable = "storage_unavailable"
	codeInternalError      = "internal_error"
)

// statusFor maps a business code to its HTTP status.
func statusFor(code string) int {
	switch {
	case code == auth.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case code == appointment.CodeTimeConflict,
		code == customer.CodeCustomerHasAppointment:
		return http.StatusConflict
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func respondError(c *gin.Context, err error) {
	respondErrorIn(c, err, time.UTC)
}

// respondErrorIn writes err as a localized HTTPError. Conflict details are
// rendered in loc.
func respondErrorIn(c *gin.Context, err error, loc *time.Location) {
	lang := middleware.Locale(c)

	if httperr.IsStorage(err) {
		logger.Log.Error("storage failure",
			zap.String("path", c.Request.URL.Path),
			zap.Bool("connection", httperr.IsConnectionFailure(err)),
			zap.Error(err),
		)
		httperr.Unavailable(c, codeStorageUnavailable, i18n.T(lang, codeStorageUnavailable))
		return
	}

	var conflict *appointment.ConflictError
	if errors.As(err, &conflict) {
		httperr.WriteDetails(c, http.StatusConflict,
			appointment.CodeTimeConflict,
			i18n.T(lang, appointment.CodeTimeConflict),
			dto.NewConflict(conflict.Appointment, loc),
		)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		httperr.Write(c, statusFor(code), code, i18n.T(lang, code))
		return
	}

	logger.Log.Error("unexpected error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	httperr.Internal(c, codeInternalError, i18n.T(lang, codeInternalError))
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, i18n.T(middleware.Locale(c), code))
}
