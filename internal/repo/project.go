package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/models"
	"github.com/google/uuid"
)

// ========================
// REPOSITORY STRUCT
// ========================

type ProjectRepo struct {
	DB *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db}
}

const projectColumns = `id, name, owner_id, html_code, css_code, js_code, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.OwnerID,
		&p.HTML,
		&p.CSS,
		&p.JS,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ========================
// CREATE PROJECT
// ========================

func (r *ProjectRepo) Create(ctx context.Context, ownerID, name string, code models.ProjectCode) (*models.Project, error) {
	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`INSERT INTO projects (id, name, owner_id, html_code, css_code, js_code)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+projectColumns,
		uuid.NewString(), name, ownerID, code.HTML, code.CSS, code.JS,
	))
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// ========================
// GET PROJECT BY ID
// ========================

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// ========================
// LIST PROJECTS BY OWNER
// ========================

// ListByOwner returns the owner's projects, newest first. The result is never nil.
func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return projects, nil
}

// ========================
// UPDATE PROJECT CODE
// ========================

// UpdateCode overwrites all three code fields. Name and owner are left alone.
func (r *ProjectRepo) UpdateCode(ctx context.Context, id string, code models.ProjectCode) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrNotFound
	}

	p, err := scanProject(r.DB.QueryRowContext(ctx,
		`UPDATE projects
		 SET html_code = $1, css_code = $2, js_code = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING `+projectColumns,
		code.HTML, code.CSS, code.JS, id,
	))
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// ========================
// DELETE PROJECT BY ID
// ========================

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}

	result, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return storeErr(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeErr(err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}
