package media

import (
	"database/sql"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
)

// lookupErr turns a repository read failure into the error kind handlers expect.
func lookupErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("media")
	}
	return apperror.Persistence(err)
}
