package agents

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/policia-dp/delegacia-api/internal/common"
	"github.com/policia-dp/delegacia-api/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func testDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	return d
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+agentes\s*\(nome,\s*email,\s*senha,\s*cargo,\s*data_de_incorporacao\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(7))
	mock.ExpectQuery(q).
		WithArgs("Carlos Meireles", "carlos@policia.gov", "$2a$12$hash", "delegado", sqlmock.AnyArg()).
		WillReturnRows(rows)

	a := &models.Agent{
		Nome:               "Carlos Meireles",
		Email:              "carlos@policia.gov",
		SenhaHash:          "$2a$12$hash",
		Cargo:              "delegado",
		DataDeIncorporacao: testDate(t, "2020-01-15"),
	}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected agent id: %d", got.ID)
	}
}

func TestCreate_UniqueViolationIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+agentes`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "agentes_email_key"})

	_, err := repo.Create(context.Background(), &models.Agent{Email: "dup@policia.gov"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+agentes`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Agent{})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*nome,\s*email,\s*senha,\s*cargo,\s*data_de_incorporacao\s+FROM\s+agentes\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "nome", "email", "senha", "cargo", "data_de_incorporacao"}).
		AddRow(int64(1), "Larissa Moura", "larissa.moura@policia.gov", "$2a$12$blob", "delegada",
			time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(q).WithArgs("larissa.moura@policia.gov").WillReturnRows(rows)

	got, err := repo.FindByEmail(context.Background(), "larissa.moura@policia.gov")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != 1 || got.SenhaHash != "$2a$12$blob" {
		t.Fatalf("unexpected agent: %+v", got)
	}
	if got.DataDeIncorporacao.String() != "2019-05-01" {
		t.Fatalf("unexpected date: %s", got.DataDeIncorporacao)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*nome,\s*email,\s*senha`).
		WithArgs("ghost@policia.gov").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@policia.gov")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*nome,\s*email,\s*cargo`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestFindAll_ReturnsProjection(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nome", "email", "cargo", "data_de_incorporacao"}).
		AddRow(int64(1), "A", "a@policia.gov", "delegado", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)).
		AddRow(int64(2), "B", "b@policia.gov", "inspetor", time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT\s+id,\s*nome,\s*email,\s*cargo,\s*data_de_incorporacao\s+FROM\s+agentes`).
		WillReturnRows(rows)

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].Cargo != "inspetor" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got[0].SenhaHash != "" {
		t.Fatalf("listing must not load password hashes")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+agentes\s+SET\s+nome`).
		WillReturnError(sql.ErrNoRows)

	a := &models.Agent{ID: 5, Nome: "X", Email: "x@policia.gov", Cargo: "c", DataDeIncorporacao: testDate(t, "2020-01-01")}
	_, err := repo.Update(context.Background(), a)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdatePartial_OnlyPresentColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+agentes\s+SET\s+cargo\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s+RETURNING\s+id,\s*nome,\s*email,\s*cargo,\s*data_de_incorporacao$`
	rows := sqlmock.NewRows([]string{"id", "nome", "email", "cargo", "data_de_incorporacao"}).
		AddRow(int64(3), "Ana", "ana@policia.gov", "delegada", time.Date(2017, 2, 3, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(q).WithArgs("delegada", int64(3)).WillReturnRows(rows)

	cargo := "delegada"
	got, err := repo.UpdatePartial(context.Background(), 3, models.AgentPatch{Cargo: &cargo})
	if err != nil {
		t.Fatalf("UpdatePartial error: %v", err)
	}
	if got.Cargo != "delegada" {
		t.Fatalf("unexpected agent: %+v", got)
	}
}

func TestUpdatePartial_EmptyPatchFallsBackToFind(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nome", "email", "cargo", "data_de_incorporacao"}).
		AddRow(int64(4), "Bia", "bia@policia.gov", "escrivã", time.Date(2015, 9, 9, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT\s+id,\s*nome,\s*email,\s*cargo`).WithArgs(int64(4)).WillReturnRows(rows)

	got, err := repo.UpdatePartial(context.Background(), 4, models.AgentPatch{})
	if err != nil {
		t.Fatalf("UpdatePartial error: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("unexpected agent: %+v", got)
	}
}

func TestUpdatePartial_EmailConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+agentes\s+SET\s+email`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	email := "dup@policia.gov"
	_, err := repo.UpdatePartial(context.Background(), 8, models.AgentPatch{Email: &email})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+agentes\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NoRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+agentes`).
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 123)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
