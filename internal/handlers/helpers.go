package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// REQUEST HELPERS
// ======================================================

func caller(c *gin.Context) access.Identity {
	return c.MustGet(middleware.ContextIdentity).(access.Identity)
}

// bindJSON reports false after pushing a 400 onto the context.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			_ = c.Error(httperr.BadRequest("invalid_request", validators.Message(verrs)))
		} else {
			_ = c.Error(httperr.BadRequest("invalid_request", "invalid request body"))
		}
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.Error(httperr.BadRequest("invalid_id", name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, httperr.BadRequest("invalid_query", name+" must be a valid UUID")
	}
	return &id, nil
}

func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, httperr.BadRequest("invalid_query", name+" must be true or false")
	}
	return &v, nil
}

func queryTime(c *gin.Context, name string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	t, err := timezone.ParseBound(c.Query(name), loc, endOfDay)
	if err != nil {
		return nil, httperr.BadRequest("invalid_query", name+": "+err.Error())
	}
	return t, nil
}
