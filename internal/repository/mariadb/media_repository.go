package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

const mediaColumns = `id, title, description, kind, category, url, thumbnail, external_id, thumbnail_external_id, size_bytes, dimensions, tags, is_featured, is_active, upload_date, metadata, created_at, updated_at`

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *model.Media) error {
	logger.Infof(ctx, "creating database record for %s #%s...", m.Kind, m.ID)

	const query = `
      INSERT INTO medias
        (id, title, description, kind, category, url, thumbnail, external_id, thumbnail_external_id, size_bytes, dimensions, tags, is_featured, is_active, upload_date, metadata)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Title, m.Description, m.Kind, m.Category,
		m.URL, m.Thumbnail, m.ExternalID, m.ThumbnailExternalID,
		m.SizeBytes, m.Dimensions, m.Tags,
		m.IsFeatured, m.IsActive, m.UploadDate, m.Metadata,
	)
	return err
}

const updateMediaQuery = `
      UPDATE medias
      SET
        title       = ?,
        description = ?,
        category    = ?,
        tags        = ?,
        is_featured = ?,
        metadata    = ?
      WHERE id = ?
    `

// Update saves the fields a client may edit. Activity and the generated
// thumbnail have their own statements so a stale record never rewrites them.
func (r *MediaRepository) Update(ctx context.Context, m *model.Media) error {
	logger.Infof(ctx, "updating database record for media #%s...", m.ID)

	_, err := r.db.ExecContext(ctx, updateMediaQuery,
		m.Title,
		m.Description,
		m.Category,
		m.Tags,
		m.IsFeatured,
		m.Metadata,
		m.ID, // WHERE clause
	)
	return err
}

// SetThumbnail points an active media at its generated thumbnail. It reports
// false when no active record was changed.
func (r *MediaRepository) SetThumbnail(ctx context.Context, id uuid.UUID, url, externalID string) (bool, error) {
	logger.Infof(ctx, "setting thumbnail of media #%s...", id)

	const query = `
      UPDATE medias
      SET thumbnail = ?, thumbnail_external_id = ?
      WHERE id = ? AND is_active = 1
    `
	res, err := r.db.ExecContext(ctx, query, url, externalID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Deactivate soft-deletes a media.
func (r *MediaRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deactivating media #%s...", id)

	_, err := r.db.ExecContext(ctx, `UPDATE medias SET is_active = 0 WHERE id = ?`, id)
	return err
}

func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	logger.Debugf(ctx, "fetching media #%s from the database...", id)

	query := `SELECT ` + mediaColumns + ` FROM medias WHERE id = ?`
	return scanMedia(r.db.QueryRowContext(ctx, query, id))
}

// List returns the requested page of active medias, newest first, and the
// number of medias matching the filter overall.
func (r *MediaRepository) List(ctx context.Context, f port.MediaFilter) ([]*model.Media, int, error) {
	logger.Debugf(ctx, "listing medias (offset %d, limit %d)...", f.Offset, f.Limit)

	where, args := mediaWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM medias`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + mediaColumns + ` FROM medias` + where + ` ORDER BY upload_date DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	medias := make([]*model.Media, 0, f.Limit)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, 0, err
		}
		medias = append(medias, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return medias, total, nil
}

// GetRefs loads the embeddable projection of the given medias. Unknown ids are
// absent from the result.
func (r *MediaRepository) GetRefs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.MediaRef, error) {
	refs := make(map[uuid.UUID]model.MediaRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `SELECT id, url, thumbnail, title, kind FROM medias WHERE id IN ` + placeholderList(len(ids))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var ref model.MediaRef
		if err := rows.Scan(&ref.ID, &ref.URL, &ref.Thumbnail, &ref.Title, &ref.Kind); err != nil {
			return nil, err
		}
		refs[ref.ID] = ref
	}
	return refs, rows.Err()
}

func (r *MediaRepository) ListPhotosWithoutThumbnailBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	const query = `
      SELECT id FROM medias
      WHERE kind = 'photo' AND is_active = 1 AND thumbnail_external_id = '' AND upload_date < ?
    `
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(row rowScanner) (*model.Media, error) {
	var m model.Media
	if err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Kind, &m.Category,
		&m.URL, &m.Thumbnail, &m.ExternalID, &m.ThumbnailExternalID,
		&m.SizeBytes, &m.Dimensions, &m.Tags,
		&m.IsFeatured, &m.IsActive, &m.UploadDate, &m.Metadata,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// tagMatch tests each element of the tags array on its own, so the JSON
// punctuation around them is never searched.
const tagMatch = `EXISTS (SELECT 1 FROM JSON_TABLE(tags, '$[*]' COLUMNS (tag VARCHAR(255) PATH '$')) AS jt WHERE LOWER(jt.tag) LIKE ?)`

func mediaWhere(f port.MediaFilter) (string, []any) {
	clauses := []string{"is_active = 1"}
	var args []any

	if f.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, string(f.Category))
	}
	if f.FeaturedOnly {
		clauses = append(clauses, "is_featured = 1")
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR "+tagMatch+")")
		args = append(args, pattern, pattern, pattern)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// escapeLike makes the LIKE wildcards of user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func placeholderList(n int) string {
	return fmt.Sprintf("(%s)", strings.TrimSuffix(strings.Repeat("?, ", n), ", "))
}
