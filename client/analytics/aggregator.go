// Package analytics assembles the dashboard view model, degrading
// gracefully when individual analytics calls fail.
package analytics

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/islemdzxd/delivery-management-platform/client/api"
	"github.com/islemdzxd/delivery-management-platform/client/store"
	"github.com/islemdzxd/delivery-management-platform/models"
)

type TrendSource string

const (
	TrendServer    TrendSource = "server"
	TrendSynthetic TrendSource = "synthetic"
)

type DistributionSource string

const (
	DistributionServer   DistributionSource = "server"
	DistributionComputed DistributionSource = "computed"
)

// Snapshot is everything the dashboard screen renders. When the
// dashboard call fails, TopUnavailable is set rather than guessing the
// rankings from local data.
type Snapshot struct {
	Dashboard      *api.Dashboard
	Trend          []api.TrendPoint
	TrendSource    TrendSource
	Distribution   []api.StatusCount
	DistSource     DistributionSource
	TopUnavailable bool

	DashboardErr    error
	TrendErr        error
	DistributionErr error
}

// Aggregator combines the three analytics endpoints with the local
// expedition store used for fallbacks.
type Aggregator struct {
	client      *api.Client
	expeditions *store.Store[models.Expedition]
}

func New(client *api.Client, expeditions *store.Store[models.Expedition]) *Aggregator {
	return &Aggregator{client: client, expeditions: expeditions}
}

// Snapshot fetches dashboard, trend and distribution concurrently. A
// failure in one never blocks or discards the others.
func (a *Aggregator) Snapshot(ctx context.Context) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Dashboard, snap.DashboardErr = a.client.Dashboard(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Trend, snap.TrendErr = a.client.ExpeditionTrend(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Distribution, snap.DistributionErr = a.client.StatusDistribution(ctx)
	}()
	wg.Wait()

	snap.TrendSource = TrendServer
	snap.DistSource = DistributionServer

	if snap.DashboardErr != nil {
		snap.TopUnavailable = true
	}
	// An empty server result is as useless to the charts as a failure,
	// so both take the fallback path.
	if snap.DistributionErr != nil || len(snap.Distribution) == 0 {
		snap.Distribution = a.computedDistribution()
		snap.DistSource = DistributionComputed
	}
	if snap.TrendErr != nil || len(snap.Trend) == 0 {
		snap.Trend = a.syntheticTrend(time.Now())
		snap.TrendSource = TrendSynthetic
	}
	return snap
}

// computedDistribution counts expeditions from the local store, walking
// statuses in their canonical order and omitting empty groups.
func (a *Aggregator) computedDistribution() []api.StatusCount {
	counts := make(map[string]int)
	for _, e := range a.expeditions.Items() {
		counts[e.Statut]++
	}

	var out []api.StatusCount
	for _, statut := range models.ExpeditionStatuses {
		if counts[statut] == 0 {
			continue
		}
		out = append(out, api.StatusCount{
			Name:   models.ExpeditionStatusInfo(statut).Label,
			Value:  counts[statut],
			Statut: statut,
		})
	}
	return out
}

var syntheticCurve = []float64{0.7, 0.75, 0.8, 0.85, 0.9, 1.0}

// syntheticTrend fabricates a plausible six-month ramp from the current
// total so the chart stays populated when the trend endpoint is down.
// Callers must surface TrendSource so it is never mistaken for history.
func (a *Aggregator) syntheticTrend(now time.Time) []api.TrendPoint {
	total := float64(a.expeditions.Len())
	points := make([]api.TrendPoint, 0, len(syntheticCurve))
	for i, factor := range syntheticCurve {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
			AddDate(0, i-len(syntheticCurve), 0)
		points = append(points, api.TrendPoint{
			Mois:        month.Format("Jan"),
			Expeditions: int(math.Round(total * factor)),
			MoisComplet: month.Format("January 2006"),
		})
	}
	return points
}
