package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akozlovs/bizkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func profileColumns() []string {
	return []string{"id", "account_id", "name", "industry", "description",
		"target_audience", "brand_voice", "goals", "website", "position", "created_at"}
}

func TestListByAccount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+profiles\s+WHERE\s+account_id\s*=\s*\$1\s+ORDER\s+BY\s+position\s*$`

	created := time.Now()
	rows := sqlmock.NewRows(profileColumns()).
		AddRow("p1", "a1", "Acme", "retail", "", "", "", "", "", 0, created).
		AddRow("p2", "a1", "Beta", "saas", "", "", "", "", "", 1, created)

	mock.ExpectQuery(q).
		WithArgs("a1").
		WillReturnRows(rows)

	got, err := repo.ListByAccount(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].Position != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListByAccount_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+.*FROM\s+profiles\s+WHERE\s+account_id\s*=\s*\$1\s+ORDER\s+BY\s+position\s*$`

	mock.ExpectQuery(q).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(profileColumns()))

	got, err := repo.ListByAccount(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+profiles\b.*ON\s+CONFLICT\s+\(id\)\s+DO\s+UPDATE\b.*$`

	p := &models.Profile{ID: "p1", AccountID: "a1", Name: "Acme", Position: 0, CreatedAt: time.Now()}

	mock.ExpectExec(q).
		WithArgs(p.ID, p.AccountID, p.Name, p.Industry, p.Description,
			p.TargetAudience, p.BrandVoice, p.Goals, p.Website, p.Position, p.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceAll_ReassignsPositions(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+profiles\s+WHERE\s+account_id\s*=\s*\$1\s*$`).
		WithArgs("a1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	upsert := `(?s)^\s*INSERT\s+INTO\s+profiles\b.*$`
	mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(0, 1))

	in := []*models.Profile{
		{ID: "p2", Position: 7},
		{ID: "p1", Position: 3},
	}
	if err := repo.ReplaceAll(context.Background(), "a1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in[0].Position != 0 || in[1].Position != 1 {
		t.Fatalf("positions not reassigned: %+v %+v", in[0], in[1])
	}
	if in[0].AccountID != "a1" {
		t.Fatalf("account not scoped: %+v", in[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReplaceAll_DeleteFails(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+profiles\b.*$`).
		WithArgs("a1").
		WillReturnError(errors.New("db down"))

	if err := repo.ReplaceAll(context.Background(), "a1", nil); err == nil {
		t.Fatal("expected error")
	}
}
