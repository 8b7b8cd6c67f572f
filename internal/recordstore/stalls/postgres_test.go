package stalls

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func stallRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "stall_no", "stall_location", "description",
		"zone", "floor_level", "section", "registration_id",
	})
}

func TestListByRegistration(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT .* FROM stall\s+WHERE registration_id = \$1\s+ORDER BY stall_no\s*$`

	mock.ExpectQuery(q).
		WithArgs("7").
		WillReturnRows(stallRows().
			AddRow("1", "19", "Zone A", "Vegetable stall", "Zone A", "1st Floor", "Vegetable Section", "7").
			AddRow("2", "25", "Zone B", "Dry goods stall", "Zone B", "2nd Floor", "Dry Goods Section", "7"))

	got, err := repo.ListByRegistration(context.Background(), "7")
	if err != nil {
		t.Fatalf("ListByRegistration error: %v", err)
	}
	if len(got) != 2 || got[0].StallNo != "19" || got[1].Section != "Dry Goods Section" {
		t.Fatalf("unexpected stalls: %+v", got)
	}
}

func TestListByRegistration_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .* FROM stall\s+WHERE registration_id = \$1`).
		WithArgs("7").
		WillReturnRows(stallRows())

	got, err := repo.ListByRegistration(context.Background(), "7")
	if err != nil {
		t.Fatalf("ListByRegistration error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no stalls, got %+v", got)
	}
}

func TestListOpenForAuction_NullRegistration(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT .* FROM stall\s+WHERE registration_id IS NULL\s+ORDER BY stall_no\s*$`

	rows := stallRows()
	rows.AddRow("9", "32", "Ground Floor", "", "Zone C", "Ground Floor", "Meat Section", nil)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListOpenForAuction(context.Background())
	if err != nil {
		t.Fatalf("ListOpenForAuction error: %v", err)
	}
	if len(got) != 1 || got[0].RegistrationID != "" || got[0].Zone != "Zone C" {
		t.Fatalf("unexpected stalls: %+v", got)
	}
}

func TestListOpenForAuction_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .* FROM stall`).
		WillReturnError(errors.New("db down"))

	if _, err := repo.ListOpenForAuction(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
