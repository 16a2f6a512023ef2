package validation

import (
	"strconv"

	"github.com/policia-dp/delegacia-api/internal/apperror"
)

const msgIDParam = "Id inválido"

// ParseIDParam coerces a path identifier to a positive integer. Failure is a
// validation error distinct from any body error.
func ParseIDParam(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation([]string{msgIDParam})
	}
	return id, nil
}
