// Package dashboard loads the inventory dataset and publishes derived snapshots.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-insights/internal/analytics"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/rogerio-castellano/inventory-insights/internal/normalize"
	"github.com/rogerio-castellano/inventory-insights/internal/repo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SnapshotCache stores derived snapshots by input fingerprint.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, fingerprint string) (*models.Snapshot, bool, error)
	SetSnapshot(ctx context.Context, fingerprint string, s *models.Snapshot) error
}

type Service struct {
	source  repo.DatasetSource
	cache   SnapshotCache
	now     func() time.Time
	current atomic.Pointer[models.Snapshot]
}

// NewService builds a service over source. cache may be nil.
func NewService(source repo.DatasetSource, cache SnapshotCache) *Service {
	return &Service{source: source, cache: cache, now: time.Now}
}

// Build derives every metric collection from normalized input.
func Build(master []models.ItemMaster, records []models.RawRecord) *models.Snapshot {
	return &models.Snapshot{
		ItemMaster:        master,
		InventoryData:     records,
		MSLTrends:         analytics.ProjectMSLTrends(records),
		ConsumptionTrends: analytics.AggregateConsumptionTrends(records),
		CategoryMetrics:   analytics.RollupByCategory(records),
		ITRMetrics:        analytics.ComputeITRMetrics(records),
	}
}

// Fingerprint hashes the normalized input. Equal input gives equal fingerprints.
func Fingerprint(master []models.ItemMaster, records []models.RawRecord) string {
	d := xxhash.New()
	enc := json.NewEncoder(d)
	_ = enc.Encode(master)
	_ = enc.Encode(records)
	return fmt.Sprintf("%016x", d.Sum64())
}

// Load fetches both documents concurrently, normalizes them and publishes a
// new snapshot. Nothing is published unless every step succeeds.
func (s *Service) Load(ctx context.Context) (*models.Snapshot, error) {
	log := logging.GetLogger()
	started := s.now()

	var masterRows, recordRows []map[string]any
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.source.ItemMaster(gctx)
		if err != nil {
			return fmt.Errorf("item master: %w", err)
		}
		masterRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.InventoryData(gctx)
		if err != nil {
			return fmt.Errorf("inventory data: %w", err)
		}
		recordRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.LogError("dashboard", "Load", "fetch", nil, err)
		return nil, &LoadError{Stage: "fetch", Err: err}
	}

	master, err := normalize.Items(masterRows)
	if err != nil {
		logging.LogError("dashboard", "Load", "normalize item master", nil, err)
		return nil, &LoadError{Stage: "normalize item master", Err: err}
	}
	records, err := normalize.Records(recordRows)
	if err != nil {
		logging.LogError("dashboard", "Load", "normalize inventory data", nil, err)
		return nil, &LoadError{Stage: "normalize inventory data", Err: err}
	}

	fp := Fingerprint(master, records)
	snap, cached := s.cached(ctx, fp)
	if !cached {
		snap = Build(master, records)
		snap.ID = uuid.NewString()
		snap.Fingerprint = fp
		snap.LoadedAt = s.now().UTC()
		if s.cache != nil {
			if err := s.cache.SetSnapshot(ctx, fp, snap); err != nil {
				log.WithError(err).Warn("could not cache snapshot")
			}
		}
	}

	s.current.Store(snap)
	log.WithFields(logrus.Fields{
		"snapshot":    snap.ID,
		"fingerprint": fp,
		"items":       len(snap.ItemMaster),
		"records":     len(snap.InventoryData),
		"cached":      cached,
		"ms":          s.now().Sub(started).Milliseconds(),
	}).Info("inventory snapshot published")
	return snap, nil
}

func (s *Service) cached(ctx context.Context, fp string) (*models.Snapshot, bool) {
	if s.cache == nil {
		return nil, false
	}
	snap, ok, err := s.cache.GetSnapshot(ctx, fp)
	if err != nil {
		logging.GetLogger().WithError(err).Warn("snapshot cache lookup failed")
		return nil, false
	}
	return snap, ok
}

// Current returns the last published snapshot.
func (s *Service) Current() (*models.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrSnapshotNotReady
	}
	return snap, nil
}
