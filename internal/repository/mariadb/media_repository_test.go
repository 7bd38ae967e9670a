package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

var mockID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

var mediaCols = []string{
	"id", "title", "description", "kind", "category", "url", "thumbnail", "external_id", "thumbnail_external_id",
	"size_bytes", "dimensions", "tags", "is_featured", "is_active", "upload_date", "metadata", "created_at", "updated_at",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB, mock
}

func idBytes(id uuid.UUID) []byte {
	b, _ := id.Value()
	return b.([]byte)
}

func mediaRow(rows *sqlmock.Rows, id uuid.UUID, title string, uploaded time.Time) *sqlmock.Rows {
	return rows.AddRow(
		idBytes(id), title, "desc", "photo", "Portrait", "https://cdn/x.jpg", "https://cdn/x.jpg", "portfolio/photos/x.jpg", "",
		int64(2048), []byte(`{"width":800,"height":600}`), []byte(`["a","b"]`), int64(1), int64(1), uploaded,
		[]byte(`{"camera":"X100"}`), uploaded, uploaded,
	)
}

func TestMediaRepository_Create_Success(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	m := &model.Media{
		ID:          mockID,
		Title:       "Sunset",
		Description: "golden hour",
		Kind:        model.KindPhoto,
		Category:    model.CategoryPortrait,
		URL:         "https://cdn/x.jpg",
		Thumbnail:   "https://cdn/x.jpg",
		ExternalID:  "portfolio/photos/x.jpg",
		SizeBytes:   2048,
		Dimensions:  &model.Dimensions{Width: 800, Height: 600},
		Tags:        model.Tags{"a"},
		IsActive:    true,
		UploadDate:  now,
		Metadata:    model.MediaMetadata{Camera: "X100"},
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO medias`)).
		WithArgs(
			m.ID, "Sunset", "golden hour", "photo", "Portrait",
			m.URL, m.Thumbnail, m.ExternalID, "",
			int64(2048), []byte(`{"width":800,"height":600}`), []byte(`["a"]`),
			false, true, now, []byte(`{"camera":"X100"}`),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), m); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Create_VideoWithoutDimensions(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)

	m := &model.Media{ID: mockID, Kind: model.KindVideo, Category: model.CategoryEvents, IsActive: true}
	mock.ExpectExec("INSERT INTO medias").
		WithArgs(
			m.ID, "", "", "video", "Events", "", "", "", "",
			int64(0), nil, []byte(`[]`), false, true, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnError(errors.New("db.Exec failed"))

	err := repo.Create(context.Background(), m)
	if err == nil || err.Error() != "db.Exec failed" {
		t.Fatalf("expected 'db.Exec failed', got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Update(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)

	m := &model.Media{
		ID: mockID, Title: "New", Description: "", Category: model.CategoryFashion,
		Thumbnail: "https://cdn/t.webp", ThumbnailExternalID: "thumbnails/x.webp",
		Tags: model.Tags{}, IsFeatured: true, IsActive: false,
	}
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE medias`)).
		WithArgs("New", "", "Fashion", []byte(`[]`), true, sqlmock.AnyArg(), m.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), m); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Update_LeavesActivityAndThumbnailAlone(t *testing.T) {
	set := updateMediaQuery[strings.Index(updateMediaQuery, "SET"):strings.Index(updateMediaQuery, "WHERE")]
	for _, col := range []string{"is_active", "thumbnail", "thumbnail_external_id"} {
		if regexp.MustCompile(`\b` + col + `\s*=`).MatchString(set) {
			t.Errorf("Update must not write %s", col)
		}
	}
}

func TestMediaRepository_SetThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"active media", 1, true},
		{"deleted meanwhile", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(`SET thumbnail = ?, thumbnail_external_id = ?
      WHERE id = ? AND is_active = 1`)).
				WithArgs("https://cdn/t.webp", "thumbnails/x.webp", mockID).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			ok, err := NewMediaRepository(sqlDB).SetThumbnail(context.Background(), mockID, "https://cdn/t.webp", "thumbnails/x.webp")
			if err != nil {
				t.Fatalf("SetThumbnail() error: %v", err)
			}
			if ok != tc.want {
				t.Errorf("updated = %v; want %v", ok, tc.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestMediaRepository_Deactivate(t *testing.T) {
	sqlDB, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE medias SET is_active = 0 WHERE id = ?`)).
		WithArgs(mockID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewMediaRepository(sqlDB).Deactivate(context.Background(), mockID); err != nil {
		t.Fatalf("Deactivate() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewMediaRepository(sqlDB)
		now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + mediaColumns + ` FROM medias WHERE id = ?`)).
			WithArgs(mockID).
			WillReturnRows(mediaRow(sqlmock.NewRows(mediaCols), mockID, "Sunset", now))

		m, err := repo.GetByID(context.Background(), mockID)
		if err != nil {
			t.Fatalf("GetByID() error: %v", err)
		}
		if m.ID != mockID || m.Title != "Sunset" || m.Kind != model.KindPhoto {
			t.Errorf("unexpected media: %+v", m)
		}
		if m.Dimensions == nil || m.Dimensions.Width != 800 {
			t.Errorf("dimensions = %+v", m.Dimensions)
		}
		if len(m.Tags) != 2 || !m.IsFeatured || !m.IsActive || m.Metadata.Camera != "X100" {
			t.Errorf("json columns not decoded: %+v", m)
		}
	})

	t.Run("missing", func(t *testing.T) {
		sqlDB, mock := newMock(t)
		repo := NewMediaRepository(sqlDB)
		mock.ExpectQuery("SELECT").WithArgs(mockID).WillReturnRows(sqlmock.NewRows(mediaCols))

		_, err := repo.GetByID(context.Background(), mockID)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Fatalf("expected sql.ErrNoRows, got %v", err)
		}
	})
}

func TestMediaRepository_List_BuildsFilters(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)
	now := time.Now().UTC()

	f := port.MediaFilter{
		Kind:         model.KindPhoto,
		Category:     model.CategoryPortrait,
		FeaturedOnly: true,
		Search:       "  Sun_50% ",
		Offset:       12,
		Limit:        12,
	}
	where := ` WHERE is_active = 1 AND kind = ? AND category = ? AND is_featured = 1 AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR ` + tagMatch + `)`
	pattern := `%sun\_50\%%`

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM medias` + where)).
		WithArgs("photo", "Portrait", pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + mediaColumns + ` FROM medias` + where + ` ORDER BY upload_date DESC, id DESC LIMIT ? OFFSET ?`)).
		WithArgs("photo", "Portrait", pattern, pattern, pattern, 12, 12).
		WillReturnRows(mediaRow(sqlmock.NewRows(mediaCols), mockID, "Sunset", now))

	medias, total, err := repo.List(context.Background(), f)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if total != 13 || len(medias) != 1 {
		t.Errorf("got total=%d len=%d; want 13 and 1", total, len(medias))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaWhere_SearchMatchesTagElements(t *testing.T) {
	tests := []struct {
		search  string
		pattern string
	}{
		{"R&B", "%r&b%"},
		{"[", "%[%"},
		{`","`, `%","%`},
	}

	for _, tc := range tests {
		t.Run(tc.search, func(t *testing.T) {
			where, args := mediaWhere(port.MediaFilter{Search: tc.search})
			if strings.Contains(where, "LOWER(tags)") {
				t.Fatalf("search must not run over the raw tags document: %s", where)
			}
			if !strings.Contains(where, "JSON_TABLE(tags, '$[*]'") || !strings.Contains(where, "LOWER(jt.tag) LIKE ?") {
				t.Fatalf("search must test each tag on its own: %s", where)
			}
			if len(args) != 3 {
				t.Fatalf("args = %v", args)
			}
			for _, a := range args {
				if a != tc.pattern {
					t.Errorf("pattern = %q; want %q", a, tc.pattern)
				}
			}
		})
	}
}

func TestMediaRepository_List_ActiveOnlyByDefault(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM medias WHERE is_active = 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM medias WHERE is_active = 1 ORDER BY upload_date DESC, id DESC LIMIT ? OFFSET ?`)).
		WithArgs(12, 0).
		WillReturnRows(sqlmock.NewRows(mediaCols))

	medias, total, err := repo.List(context.Background(), port.MediaFilter{Limit: 12})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if total != 0 || medias == nil || len(medias) != 0 {
		t.Errorf("expected an empty non-nil page, got %v (total %d)", medias, total)
	}
}

func TestMediaRepository_List_CountError(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("count fail"))

	if _, _, err := repo.List(context.Background(), port.MediaFilter{Limit: 12}); err == nil || err.Error() != "count fail" {
		t.Fatalf("expected count fail, got %v", err)
	}
}

func TestMediaRepository_GetRefs(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)
	other := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	refs, err := repo.GetRefs(context.Background(), nil)
	if err != nil || len(refs) != 0 {
		t.Fatalf("empty ids: got %v, %v", refs, err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, url, thumbnail, title, kind FROM medias WHERE id IN (?, ?)`)).
		WithArgs(mockID, other).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "thumbnail", "title", "kind"}).
			AddRow(idBytes(mockID), "https://cdn/v.mp4", "https://cdn/p.jpg", "Clip", "video"))

	refs, err = repo.GetRefs(context.Background(), []uuid.UUID{mockID, other})
	if err != nil {
		t.Fatalf("GetRefs() error: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if ref := refs[mockID]; ref.Kind != model.KindVideo || ref.Thumbnail != "https://cdn/p.jpg" {
		t.Errorf("unexpected ref %+v", ref)
	}
}

func TestMediaRepository_ListPhotosWithoutThumbnailBefore(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewMediaRepository(sqlDB)
	cutoff := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`thumbnail_external_id = '' AND upload_date < ?`)).
		WithArgs(cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(idBytes(mockID)))

	ids, err := repo.ListPhotosWithoutThumbnailBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != mockID {
		t.Errorf("ids = %v", ids)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Errorf("escapeLike = %q", got)
	}
}
