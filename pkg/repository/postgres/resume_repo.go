package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumeforge/backend/pkg/resume"
)

// ResumeRepository stores resume documents with the record payload as JSONB.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_documents (
	id UUID PRIMARY KEY,
	owner_id UUID,
	title TEXT NOT NULL,
	record JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS resume_uploads (
	resume_id UUID PRIMARY KEY REFERENCES resume_documents(id) ON DELETE CASCADE,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resume_documents_owner ON resume_documents(owner_id);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, d resume.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	payload, err := json.Marshal(d.Record)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_documents (id, owner_id, title, record, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, d.ID, d.OwnerID, d.Title, payload, d.CreatedAt, d.UpdatedAt)
	return err
}

func (r *ResumeRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (resume.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, record, created_at, updated_at
FROM resume_documents WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanDocument(row)
}

func (r *ResumeRepository) GetAny(ctx context.Context, id uuid.UUID) (resume.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, record, created_at, updated_at
FROM resume_documents WHERE id = $1
`, id)
	return scanDocument(row)
}

func (r *ResumeRepository) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, record, created_at, updated_at
FROM resume_documents WHERE owner_id = $3
ORDER BY updated_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *ResumeRepository) ListAll(ctx context.Context, limit, offset int) ([]resume.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, record, created_at, updated_at
FROM resume_documents
ORDER BY updated_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (r *ResumeRepository) Update(ctx context.Context, d resume.Document) error {
	payload, err := json.Marshal(d.Record)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE resume_documents
SET title = $3, record = $4, updated_at = $5
WHERE id = $1 AND owner_id = $2
`, d.ID, d.OwnerID, d.Title, payload, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ResumeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM resume_documents WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ResumeRepository) SaveUpload(ctx context.Context, m resume.UploadMeta) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO resume_uploads (resume_id, filename, mime_type, size_bytes)
VALUES ($1, $2, $3, $4)
ON CONFLICT (resume_id) DO UPDATE SET filename = EXCLUDED.filename, mime_type = EXCLUDED.mime_type, size_bytes = EXCLUDED.size_bytes
`, m.ResumeID, m.Filename, m.MimeType, m.Size)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (resume.Document, error) {
	var d resume.Document
	var payload []byte
	var created, updated time.Time
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &payload, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Document{}, pgx.ErrNoRows
		}
		return resume.Document{}, err
	}
	d.Record = resume.NewRecord()
	if err := json.Unmarshal(payload, &d.Record); err != nil {
		return resume.Document{}, err
	}
	d.CreatedAt = created.UTC()
	d.UpdatedAt = updated.UTC()
	return d, nil
}

func scanDocuments(rows pgx.Rows) ([]resume.Document, error) {
	var res []resume.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}
