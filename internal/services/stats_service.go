package services

import (
	"context"
	"time"

	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/metrics"
	"flighttrack/logbook/internal/models/dtos"
	"flighttrack/logbook/internal/models/entities"
	"flighttrack/logbook/internal/stats"
)

const summaryCacheTTL = 5 * time.Minute

// StatsService builds per-owner flight summaries. Summaries computed for
// "now" are cached; any write through the logbook or import services
// invalidates the owner's cache entry.
type StatsService struct {
	flights *repositories.FlightRepository
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewStatsService(flights *repositories.FlightRepository, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *StatsService {
	return &StatsService{flights: flights, cache: cache, metrics: metricsReg}
}

// Summary aggregates the owner's records relative to asOf. A zero asOf
// means "now"; only that case is served from cache, since historical
// as-of queries produce a different window per call.
func (s *StatsService) Summary(ctx context.Context, ownerID string, asOf time.Time) (*dtos.SummaryResponse, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	cacheable := asOf.IsZero()
	cacheKey := string(constants.CachePrefixSummary) + ownerID

	if cacheable && s.cache != nil {
		var cached dtos.SummaryResponse
		if s.cache.GetJSON(cacheKey, &cached) {
			if s.metrics != nil {
				s.metrics.CacheHitsTotal.WithLabelValues("summary").Inc()
			}
			cached.Metadata.Cached = true
			return &cached, nil
		}
		if s.metrics != nil {
			s.metrics.CacheMissesTotal.WithLabelValues("summary").Inc()
		}
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}

	rows, err := s.flights.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}
	records := make([]entities.FlightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToEntity())
	}

	summary := stats.Aggregate(records, asOf)
	resp := &dtos.SummaryResponse{
		Summary: summary,
		Metadata: dtos.SummaryMetadata{
			RecordCount: len(records),
			AsOf:        asOf.Format(time.RFC3339),
			GeneratedAt: time.Now().Format(time.RFC3339),
			Cached:      false,
		},
	}

	if s.metrics != nil {
		s.metrics.SummariesBuiltTotal.Inc()
	}
	if cacheable && s.cache != nil {
		s.cache.Set(cacheKey, resp, summaryCacheTTL)
	}

	logging.Debug("Summary built", "owner_id", ownerID, "records", len(records))
	return resp, nil
}
