package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/models/dtos"
	"flighttrack/logbook/internal/models/entities"
)

// csvHeader matches the legacy interchange format: seven columns, keyed
// so a re-import resolves every column through the canonical aliases.
var csvHeader = []string{"id", "aircraft", "crew", "durationHours", "departure", "arrival", "date"}

var xlsxHeader = []string{"id", "aircraft", "crew", "durationHours", "departure", "arrival", "date", "flightType", "flightTime", "nightVision", "note"}

// ExportService renders an owner's records for download. Row reads go
// through the sqlx export repository when one is wired (postgres
// deployments); otherwise they fall back to the ORM repository.
type ExportService struct {
	flights   *repositories.FlightRepository
	aircraft  *repositories.AircraftRepository
	reminders *repositories.ReminderRepository
	export    *repositories.ExportRepository
}

func NewExportService(
	flights *repositories.FlightRepository,
	aircraft *repositories.AircraftRepository,
	reminders *repositories.ReminderRepository,
	export *repositories.ExportRepository,
) *ExportService {
	return &ExportService{
		flights:   flights,
		aircraft:  aircraft,
		reminders: reminders,
		export:    export,
	}
}

// Flights returns the owner's records in stored order.
func (s *ExportService) Flights(ctx context.Context, ownerID string) ([]entities.FlightRecord, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}
	if s.export != nil {
		records, err := s.export.ListFlights(ctx, ownerID)
		if err != nil {
			return nil, NewLogbookError(constants.ErrCodePersistence, err)
		}
		return records, nil
	}
	rows, err := s.flights.ListAll(ctx, ownerID)
	if err != nil {
		return nil, NewLogbookError(constants.ErrCodePersistence, err)
	}
	records := make([]entities.FlightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToEntity())
	}
	return records, nil
}

// WriteCSV streams the owner's records as CSV with a fixed header row.
func (s *ExportService) WriteCSV(ctx context.Context, ownerID string, w io.Writer) error {
	records, err := s.Flights(ctx, ownerID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	for _, rec := range records {
		if err := cw.Write(csvRow(rec)); err != nil {
			return NewLogbookError(constants.ErrCodePersistence, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	return nil
}

// WriteXLSX renders the owner's records as a single-sheet workbook.
func (s *ExportService) WriteXLSX(ctx context.Context, ownerID string, w io.Writer) error {
	records, err := s.Flights(ctx, ownerID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Flights"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return NewLogbookError(constants.ErrCodePersistence, err)
		}
	}
	for i, rec := range records {
		values := []any{
			rec.ID, rec.Aircraft, rec.Crew, rec.DurationHours,
			rec.Departure, rec.Arrival, rec.Date,
			rec.FlightType, rec.FlightTime, rec.NightVision, rec.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return NewLogbookError(constants.ErrCodePersistence, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return NewLogbookError(constants.ErrCodePersistence, err)
	}
	return nil
}

// Snapshot loads the owner's flights, aircraft and reminders in parallel
// and bundles them into a single backup payload.
func (s *ExportService) Snapshot(ctx context.Context, ownerID string) (*dtos.Snapshot, error) {
	if ownerID == "" {
		return nil, NewLogbookError(constants.ErrCodeUnavailable, nil)
	}

	var snap dtos.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.Flights(gctx, ownerID)
		if err != nil {
			return err
		}
		snap.Flights = records
		return nil
	})
	g.Go(func() error {
		rows, err := s.aircraft.ListAll(gctx, ownerID)
		if err != nil {
			return NewLogbookError(constants.ErrCodePersistence, err)
		}
		list := make([]entities.Aircraft, 0, len(rows))
		for _, row := range rows {
			list = append(list, row.ToEntity())
		}
		snap.Aircrafts = list
		return nil
	})
	g.Go(func() error {
		rows, err := s.reminders.ListAll(gctx, ownerID)
		if err != nil {
			return NewLogbookError(constants.ErrCodePersistence, err)
		}
		list := make([]entities.Reminder, 0, len(rows))
		for _, row := range rows {
			list = append(list, row.ToEntity())
		}
		snap.Reminders = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func csvRow(rec entities.FlightRecord) []string {
	return []string{
		rec.ID,
		rec.Aircraft,
		rec.Crew,
		strconv.FormatFloat(rec.DurationHours, 'f', -1, 64),
		rec.Departure,
		rec.Arrival,
		rec.Date,
	}
}
