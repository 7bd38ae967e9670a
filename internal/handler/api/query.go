package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// positiveInt reads an optional integer parameter. Absent yields 0.
func positiveInt(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperror.Validation("%s must be a positive integer, got %q", name, raw)
	}
	return n, nil
}

// optionalTime reads an optional RFC3339 or YYYY-MM-DD parameter.
func optionalTime(q url.Values, name string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	t, err := model.ParseTime(raw)
	if err != nil {
		return nil, apperror.Validation("%s: %v", name, err)
	}
	return &t, nil
}
