// Package services contains the application services for the TravelKeeper
// client: the hybrid travel repository (the synchronization core), the
// travel use-cases built on top of it, and authentication.
package services

import (
	"context"

	"github.com/dmitrijs2005/travelkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/client/repositories/travels"
	"github.com/dmitrijs2005/travelkeeper/internal/logging"
)

// HybridTravelRepository composes the remote (authoritative) and local
// (durable, always-available) stores behind the single record-store contract
// the rest of the application uses.
//
// Write path: when online, the operation goes to the remote store first; on
// success the same operation is mirrored locally on a best-effort basis (a
// mirror failure is logged and swallowed, the remote write stands); on remote
// failure the operation degrades to local-only and the caller still observes
// success. Offline, the operation goes straight to the local store.
//
// Read path is intentionally asymmetric: FindByID and FindAll delegate purely
// to the remote store when online, propagating its failures; FindByUserID
// merges remote and local results by record id (remote wins on collision) and
// degrades to local-only when the remote fetch fails.
//
// The connectivity answer is only a hint. A remote call may still fail right
// after the probe said online; every branch stays correct in that case
// because local writes are idempotent status assignments, not counters.
type HybridTravelRepository struct {
	online  travels.Repository
	offline travels.Repository
	checker connectivity.Checker
	logger  logging.Logger
}

// NewHybridTravelRepository wires the two stores and the reachability probe.
func NewHybridTravelRepository(online, offline travels.Repository, checker connectivity.Checker, logger logging.Logger) *HybridTravelRepository {
	return &HybridTravelRepository{
		online:  online,
		offline: offline,
		checker: checker,
		logger:  logger.With("module", "hybrid_repo"),
	}
}

// Save stores the travel remotely and mirrors it locally, falling back to
// local-only when offline or when the remote write fails.
func (h *HybridTravelRepository) Save(ctx context.Context, t *models.Travel) error {
	return h.write(ctx, "save", t.ID,
		func() error { return h.online.Save(ctx, t) },
		func() error { return h.offline.Save(ctx, t) },
	)
}

// Update overwrites the travel's mutable fields using the same routing as Save.
func (h *HybridTravelRepository) Update(ctx context.Context, t *models.Travel) error {
	return h.write(ctx, "update", t.ID,
		func() error { return h.online.Update(ctx, t) },
		func() error { return h.offline.Update(ctx, t) },
	)
}

// Delete removes the travel using the same routing as Save. The local leg
// appends the tombstone regardless of which branch was taken.
func (h *HybridTravelRepository) Delete(ctx context.Context, id string) error {
	return h.write(ctx, "delete", id,
		func() error { return h.online.Delete(ctx, id) },
		func() error { return h.offline.Delete(ctx, id) },
	)
}

// write implements the uniform write algorithm: probe, remote attempt,
// local mirror or local fallback.
func (h *HybridTravelRepository) write(ctx context.Context, op, id string, remote, local func() error) error {
	if !h.checker.IsOnline(ctx) {
		return local()
	}

	if err := remote(); err != nil {
		// The caller observes success as long as the local fallback holds
		// the record; no remote retry is attempted here.
		h.logger.Warn(ctx, "remote write failed, falling back to local", "op", op, "travel_id", id, "error", err)
		return local()
	}

	if err := local(); err != nil {
		// Remote write already committed; a failed mirror only costs a stale
		// local copy, so it is logged and swallowed.
		h.logger.Warn(ctx, "local mirror write failed", "op", op, "travel_id", id, "error", err)
	}
	return nil
}

// FindByID delegates to the remote store when online and to the local store
// when offline. A remote failure propagates; there is no local fallback on
// this path.
func (h *HybridTravelRepository) FindByID(ctx context.Context, id string) (*models.Travel, error) {
	if h.checker.IsOnline(ctx) {
		return h.online.FindByID(ctx, id)
	}
	return h.offline.FindByID(ctx, id)
}

// FindAll delegates like FindByID: pure remote when online, no fallback.
func (h *HybridTravelRepository) FindAll(ctx context.Context) ([]models.Travel, error) {
	if h.checker.IsOnline(ctx) {
		return h.online.FindAll(ctx)
	}
	return h.offline.FindAll(ctx)
}

// FindByUserID merges the remote list with local records that have not been
// pushed yet. The merge key is the record id; on a collision the remote
// version wins and the local copy is dropped entirely. A remote failure
// degrades the result to the local-only list.
func (h *HybridTravelRepository) FindByUserID(ctx context.Context, userID string) ([]models.Travel, error) {
	if !h.checker.IsOnline(ctx) {
		return h.offline.FindByUserID(ctx, userID)
	}

	remoteList, err := h.online.FindByUserID(ctx, userID)
	if err != nil {
		h.logger.Warn(ctx, "remote list failed, falling back to local", "user_id", userID, "error", err)
		return h.offline.FindByUserID(ctx, userID)
	}

	localList, err := h.offline.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(remoteList))
	for _, t := range remoteList {
		seen[t.ID] = struct{}{}
	}

	merged := remoteList
	for _, t := range localList {
		if _, ok := seen[t.ID]; !ok {
			merged = append(merged, t)
		}
	}
	return merged, nil
}
