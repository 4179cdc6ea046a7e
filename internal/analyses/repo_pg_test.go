package analyses

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	result := json.RawMessage(`{"role":"General","fit":7}`)

	mock.ExpectQuery("INSERT INTO analyses").
		WithArgs(int64(42), []byte(result)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(context.Background(), 42, result)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCountForMenteeSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	since := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(9), since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountForMenteeSince(context.Background(), 9, since)
	if err != nil {
		t.Fatalf("CountForMenteeSince: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoRecentByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "created_at", "result", "name", "target_role"}).
		AddRow(int64(5), created, []byte(`{"fit":8}`), "Ada", "Backend Engineer").
		AddRow(int64(4), created.Add(-time.Hour), []byte(`{"fit":6}`), "Ada", "Backend Engineer")

	mock.ExpectQuery("FROM analyses").
		WithArgs("ada@example.com", 5).
		WillReturnRows(rows)

	out, err := repo.RecentByEmail(context.Background(), "ada@example.com", 5)
	if err != nil {
		t.Fatalf("RecentByEmail: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != 5 || out[0].MenteeName != "Ada" || string(out[0].Result) != `{"fit":8}` {
		t.Fatalf("row = %+v", out[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
