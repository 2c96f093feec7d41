package travels

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleTravel() *models.Travel {
	return &models.Travel{
		ID:     "t-1",
		Title:  "Hike",
		Date:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		UserID: "u-1",
	}
}

func TestCreateOrUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+travels\s*\(id,\s*title,\s*description,\s*date,\s*user_id,\s*latitude,\s*longitude,\s*photo_url\).*ON\s+CONFLICT\s*\(id\)\s+DO\s+UPDATE`

	tr := sampleTravel()
	mock.ExpectExec(q).
		WithArgs(tr.ID, tr.Title, tr.Description, tr.Date, tr.UserID, tr.Latitude, tr.Longitude, tr.PhotoURL).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateOrUpdate(context.Background(), tr); err != nil {
		t.Fatalf("CreateOrUpdate error: %v", err)
	}
}

func TestCreateOrUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+travels`).
		WillReturnError(errors.New("db down"))

	err := repo.CreateOrUpdate(context.Background(), sampleTravel())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+t\.id.*FROM\s+travels\s+t\s+JOIN\s+users\s+u.*WHERE\s+t\.id\s*=\s*\$1`

	rows := sqlmock.NewRows([]string{"id", "title", "description", "date", "user_id", "name", "latitude", "longitude", "photo_url"}).
		AddRow("t-1", "Hike", "", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "u-1", "Alice", 0.0, 0.0, "")
	mock.ExpectQuery(q).WithArgs("t-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Hike" || got.UserName != "Alice" {
		t.Fatalf("unexpected travel: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+t\.id.*WHERE\s+t\.id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSelectByUser_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+t\.id.*WHERE\s+t\.user_id\s*=\s*\$1\s+ORDER\s+BY\s+t\.date\s+DESC`

	rows := sqlmock.NewRows([]string{"id", "title", "description", "date", "user_id", "name", "latitude", "longitude", "photo_url"}).
		AddRow("t-2", "Swim", "", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), "u-1", "Alice", 0.0, 0.0, "").
		AddRow("t-1", "Hike", "", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "u-1", "Alice", 0.0, 0.0, "")
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.SelectByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("SelectByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdate_NotOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+travels.*WHERE\s+id\s*=\s*\$7\s+AND\s+user_id\s*=\s*\$8`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), sampleTravel(), "someone-else")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+travels\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs("t-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "t-1", "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+travels`).
		WithArgs("ghost", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost", "u-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
