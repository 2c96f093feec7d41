package travels

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/travelkeeper/internal/common"
	"github.com/dmitrijs2005/travelkeeper/internal/dbx"
	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrUpdate(ctx context.Context, t *models.Travel) error {

	query :=
		`INSERT INTO travels (id, title, description, date, user_id, latitude, longitude, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE
		 SET title = EXCLUDED.title,
		     description = EXCLUDED.description,
		     date = EXCLUDED.date,
		     latitude = EXCLUDED.latitude,
		     longitude = EXCLUDED.longitude,
		     photo_url = EXCLUDED.photo_url
		 `

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.Date, t.UserID, t.Latitude, t.Longitude, t.PhotoURL)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

const selectColumns = `t.id, t.title, t.description, t.date, t.user_id, u.name, t.latitude, t.longitude, t.photo_url`

func scanTravel(row interface{ Scan(dest ...any) error }, t *models.Travel) error {
	return row.Scan(&t.ID, &t.Title, &t.Description, &t.Date, &t.UserID, &t.UserName,
		&t.Latitude, &t.Longitude, &t.PhotoURL)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Travel, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM travels t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.id = $1
		 `

	t := &models.Travel{}
	err := scanTravel(r.db.QueryRowContext(ctx, query, id), t)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]models.Travel, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM travels t
		 JOIN users u ON u.id = t.user_id
		 ORDER BY t.date DESC
		 `

	return r.selectList(ctx, query)
}

func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]models.Travel, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM travels t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.user_id = $1
		 ORDER BY t.date DESC
		 `

	return r.selectList(ctx, query, userID)
}

func (r *PostgresRepository) selectList(ctx context.Context, query string, args ...any) ([]models.Travel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Travel{}
	for rows.Next() {
		var t models.Travel
		if err := scanTravel(rows, &t); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Travel, userID string) error {
	query :=
		`UPDATE travels
		 SET title = $1, description = $2, date = $3, latitude = $4, longitude = $5, photo_url = $6
		 WHERE id = $7 AND user_id = $8
		 `

	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Date, t.Latitude, t.Longitude, t.PhotoURL, t.ID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, userID string) error {
	query :=
		`DELETE FROM travels
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
