package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/models/entities"
)

// ExportRepository reads flight rows straight into canonical records for
// export, bypassing the ORM. Only available on the Postgres variant.
type ExportRepository struct {
	db *sqlx.DB
}

func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

func (r *ExportRepository) ListFlights(ctx context.Context, ownerID string) ([]entities.FlightRecord, error) {
	rows, err := r.db.QueryxContext(ctx, constants.ListFlightsForExport, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights for export: %w", err)
	}
	defer rows.Close()

	var records []entities.FlightRecord
	for rows.Next() {
		var rec entities.FlightRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, fmt.Errorf("failed to scan flight row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
