package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/travelkeeper/internal/server/models"
	"github.com/dmitrijs2005/travelkeeper/internal/server/repositories/repomanager"
)

// TravelService implements the travel operations behind the HTTP API. Writes
// are scoped to the authenticated owner; reads are not, so the travel feed is
// shared across users.
type TravelService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTravelService(db *sql.DB, m repomanager.RepositoryManager) *TravelService {
	return &TravelService{db: db, repomanager: m}
}

// Create stores the client-pushed travel under the authenticated user.
// Repeated pushes of the same record id are collapsed into one row.
func (s *TravelService) Create(ctx context.Context, t *models.Travel, userID string) error {
	t.UserID = userID
	repo := s.repomanager.Travels(s.db)
	return repo.CreateOrUpdate(ctx, t)
}

// Get returns one travel regardless of owner.
func (s *TravelService) Get(ctx context.Context, id string) (*models.Travel, error) {
	repo := s.repomanager.Travels(s.db)
	return repo.GetByID(ctx, id)
}

// List returns every travel.
func (s *TravelService) List(ctx context.Context) ([]models.Travel, error) {
	repo := s.repomanager.Travels(s.db)
	return repo.SelectAll(ctx)
}

// ListByUser returns the travels owned by userID.
func (s *TravelService) ListByUser(ctx context.Context, userID string) ([]models.Travel, error) {
	repo := s.repomanager.Travels(s.db)
	return repo.SelectByUser(ctx, userID)
}

// Update overwrites a travel owned by userID.
func (s *TravelService) Update(ctx context.Context, t *models.Travel, userID string) error {
	repo := s.repomanager.Travels(s.db)
	return repo.Update(ctx, t, userID)
}

// Delete removes a travel owned by userID.
func (s *TravelService) Delete(ctx context.Context, id string, userID string) error {
	repo := s.repomanager.Travels(s.db)
	return repo.Delete(ctx, id, userID)
}
