package repo

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/models"
)

var projectCols = []string{"id", "name", "owner_id", "html_code", "css_code", "js_code", "created_at", "updated_at"}

const (
	projectID  = "0b8a4f7e-9d52-4e1a-8c37-5d6e2f1a3b04"
	projectID2 = "9c2d1e0f-7a6b-4c5d-8e9f-0a1b2c3d4e5f"
)

func TestProjectRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO projects \(id, name, owner_id, html_code, css_code, js_code\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)\s+RETURNING id, name, owner_id`).
		WithArgs(sqlmock.AnyArg(), "Site", "u1", "<h1>x</h1>", "", "").
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow(projectID, "Site", "u1", "<h1>x</h1>", "", "", now, now))

	repo := NewProjectRepo(db)
	p, err := repo.Create(context.Background(), "u1", "Site", models.ProjectCode{HTML: "<h1>x</h1>"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != projectID || p.Name != "Site" || p.OwnerID != "u1" || p.HTML != "<h1>x</h1>" {
		t.Errorf("unexpected project: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, owner_id, html_code, css_code, js_code, created_at, updated_at\s+FROM projects\s+WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow(projectID, "Site", "u1", "h", "c", "j", now, now))

	repo := NewProjectRepo(db)
	p, err := repo.GetByID(context.Background(), projectID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.HTML != "h" || p.CSS != "c" || p.JS != "j" {
		t.Errorf("unexpected project: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, owner_id`).
		WithArgs(projectID).
		WillReturnError(sql.ErrNoRows)

	repo := NewProjectRepo(db)
	_, err = repo.GetByID(context.Background(), projectID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_GetByID_MalformedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewProjectRepo(db)
	_, err = repo.GetByID(context.Background(), "abc")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	mock.ExpectQuery(`SELECT id, name, owner_id, html_code, css_code, js_code, created_at, updated_at\s+FROM projects\s+WHERE owner_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(projectID2, "Newer", "u1", "", "", "", newer, newer).
			AddRow(projectID, "Older", "u1", "", "", "", older, older))

	repo := NewProjectRepo(db)
	list, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Newer" || list[1].Name != "Older" {
		t.Errorf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_ListByOwner_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM projects\s+WHERE owner_id = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(projectCols))

	repo := NewProjectRepo(db)
	list, err := repo.ListByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil slice, got: %#v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_UpdateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE projects\s+SET html_code = \$1, css_code = \$2, js_code = \$3, updated_at = NOW\(\)\s+WHERE id = \$4`).
		WithArgs("", "", "", projectID).
		WillReturnRows(sqlmock.NewRows(projectCols).AddRow(projectID, "Site", "u1", "", "", "", now, now))

	repo := NewProjectRepo(db)
	p, err := repo.UpdateCode(context.Background(), projectID, models.ProjectCode{})
	if err != nil {
		t.Fatalf("UpdateCode: %v", err)
	}
	if p.Name != "Site" || p.OwnerID != "u1" || p.HTML != "" {
		t.Errorf("unexpected project: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_UpdateCode_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`UPDATE projects`).
		WithArgs("a", "b", "c", projectID).
		WillReturnError(sql.ErrNoRows)

	repo := NewProjectRepo(db)
	_, err = repo.UpdateCode(context.Background(), projectID, models.ProjectCode{HTML: "a", CSS: "b", JS: "c"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewProjectRepo(db)
	if err := repo.Delete(context.Background(), projectID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewProjectRepo(db)
	err = repo.Delete(context.Background(), projectID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_Delete_StoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM projects`).
		WithArgs(projectID).
		WillReturnError(errors.New("broken pipe"))

	repo := NewProjectRepo(db)
	err = repo.Delete(context.Background(), projectID)
	if !errors.Is(err, common.ErrStore) {
		t.Errorf("expected ErrStore, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
