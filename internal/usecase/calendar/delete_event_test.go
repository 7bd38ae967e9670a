package calendar

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/mock"
)

func TestDeleteEvent(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   error
		wantCache bool
	}{
		{"deleted", nil, nil, true},
		{"not found", sql.ErrNoRows, apperror.ErrNotFound, false},
		{"db failure", errors.New("db fail"), apperror.ErrPersistence, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.EventRepo{DeleteErr: tc.deleteErr}
			cache := &mock.Cache{}

			err := NewEventDeleter(repo, cache).DeleteEvent(context.Background(), mockID)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if repo.DeletedID != mockID {
				t.Errorf("deleted %s", repo.DeletedID)
			}
			if cache.DelCalled != tc.wantCache {
				t.Errorf("cache delete called = %v; want %v", cache.DelCalled, tc.wantCache)
			}
		})
	}
}
