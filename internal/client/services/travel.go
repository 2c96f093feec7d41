package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/travels"
	"github.com/dmitrijs2005/travelkeeper/internal/logging"
	"github.com/dmitrijs2005/travelkeeper/internal/netx"
	"github.com/google/uuid"
)

// PhotoUploader obtains a presigned upload slot for a single photo.
type PhotoUploader interface {
	PresignPhoto(ctx context.Context) (uploadURL, photoURL string, err error)
}

// TravelService implements the travel use-cases on top of the hybrid store.
type TravelService struct {
	repo     travels.Repository
	uploader PhotoUploader
	logger   logging.Logger
}

// NewTravelService returns a service over the given store. uploader may be
// nil when photo uploads are unavailable.
func NewTravelService(repo travels.Repository, uploader PhotoUploader, logger logging.Logger) *TravelService {
	return &TravelService{
		repo:     repo,
		uploader: uploader,
		logger:   logger.With("module", "travel_service"),
	}
}

// RegisterTravelInput carries the user-entered fields of a new travel.
type RegisterTravelInput struct {
	Title       string
	Description string
	Date        time.Time
	User        models.User
	Latitude    float64
	Longitude   float64

	// Photo, when non-empty, is uploaded to object storage before the record
	// is saved. An upload failure is not fatal: the record is saved without
	// a photo.
	Photo            []byte
	PhotoContentType string
}

// RegisterTravel assigns a fresh id, uploads the photo when one is attached,
// and stores the record through the hybrid repository.
func (s *TravelService) RegisterTravel(ctx context.Context, in RegisterTravelInput) (*models.Travel, error) {
	t := &models.Travel{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		User:        in.User,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}

	if len(in.Photo) > 0 && s.uploader != nil {
		if url, err := s.uploadPhoto(ctx, in.Photo, in.PhotoContentType); err != nil {
			s.logger.Warn(ctx, "photo upload failed, saving travel without photo", "travel_id", t.ID, "error", err)
		} else {
			t.PhotoURL = url
		}
	}

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TravelService) uploadPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	uploadURL, photoURL, err := s.uploader.PresignPhoto(ctx)
	if err != nil {
		return "", err
	}
	if err := netx.UploadToPresignedURL(ctx, uploadURL, data, contentType); err != nil {
		return "", err
	}
	return photoURL, nil
}

// Get returns one travel by id.
func (s *TravelService) Get(ctx context.Context, id string) (*models.Travel, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns every travel visible through the current route.
func (s *TravelService) ListAll(ctx context.Context) ([]models.Travel, error) {
	return s.repo.FindAll(ctx)
}

// ListByUser returns the travels owned by userID, merged across stores when
// online.
func (s *TravelService) ListByUser(ctx context.Context, userID string) ([]models.Travel, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// UpdateTravel overwrites the mutable fields of an existing travel.
func (s *TravelService) UpdateTravel(ctx context.Context, t *models.Travel) error {
	return s.repo.Update(ctx, t)
}

// Remove deletes a travel by id.
func (s *TravelService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
