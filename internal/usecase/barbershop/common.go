package barbershop

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	errShopNotFound        = httperr.NotFound("barbershop_not_found", "barbershop not found")
	errServiceNotFound     = httperr.NotFound("service_not_found", "service not found")
	errServiceTypeNotFound = httperr.NotFound("service_type_not_found", "service type not found")
)

var pastTense = map[lifecycle.Action]string{
	lifecycle.ActionEnable:  "enabled",
	lifecycle.ActionDisable: "disabled",
	lifecycle.ActionDelete:  "deleted",
}

// mapNotFound turns a store miss into the given business error.
func mapNotFound(err error, notFound error, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func requireText(field, value string, min, max int) (string, error) {
	value = strings.TrimSpace(value)
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return "", httperr.BadRequest("invalid_"+field, fmt.Sprintf("%s must have between %d and %d characters", field, min, max))
	}
	return value, nil
}

func optionalText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > max {
		return "", httperr.BadRequest("invalid_"+field, fmt.Sprintf("%s must have at most %d characters", field, max))
	}
	return value, nil
}
