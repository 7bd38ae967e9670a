package calendar

import (
	"database/sql"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
)

func lookupErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("event")
	}
	return apperror.Persistence(err)
}
