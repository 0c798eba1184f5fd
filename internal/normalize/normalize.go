package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"flighttrack/logbook/internal/models/entities"
)

// fieldAliases maps each canonical field to its candidate source keys, in
// resolution order. The first key present with a non-empty value wins.
// Covers the legacy storage shape (havaAraci, pilotlar, sure, kalkis, inis,
// tarih) and the short CSV headers seen in the wild.
var fieldAliases = map[string][]string{
	"id":            {"id"},
	"aircraft":      {"aircraft", "havaAraci", "hava", "ac"},
	"crew":          {"crew", "pilotlar", "pilot", "pilots"},
	"durationHours": {"durationHours", "duration", "sure", "ucusSuresi", "sureh", "s"},
	"departure":     {"departure", "kalkis", "from"},
	"arrival":       {"arrival", "inis", "to"},
	"date":          {"date", "tarih"},
	"flightType":    {"flightType", "ucusTipi", "tip"},
	"flightTime":    {"flightTime", "ucusZamani"},
	"nightVision":   {"nightVision"},
	"note":          {"note", "ucusNotu"},
}

// dateLayouts are tried in order by ParseWhen. Layouts without a zone are
// interpreted in local time, matching how entries were keyed in.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Record maps a loosely-typed input dictionary onto the canonical flight
// record. It never fails: missing or malformed fields degrade to defaults.
func Record(raw map[string]any) entities.FlightRecord {
	rec := entities.FlightRecord{
		ID:        resolveString(raw, "id"),
		Aircraft:  resolveString(raw, "aircraft"),
		Crew:      resolveString(raw, "crew"),
		Departure: resolveString(raw, "departure"),
		Arrival:   resolveString(raw, "arrival"),
		Note:      resolveString(raw, "note"),
	}

	rec.DurationHours, _ = ParseHours(resolveValue(raw, "durationHours"))
	rec.FlightType = strings.TrimSpace(resolveString(raw, "flightType"))
	rec.FlightTime = strings.TrimSpace(resolveString(raw, "flightTime"))
	rec.NightVision = parseBool(resolveValue(raw, "nightVision"))

	rec.Date = CanonicalDate(resolveString(raw, "date"))

	if rec.ID == "" {
		rec.ID = NewID()
	}
	return rec
}

// Batch normalizes every element of an import batch.
func Batch(raw []map[string]any) []entities.FlightRecord {
	records := make([]entities.FlightRecord, 0, len(raw))
	for _, item := range raw {
		records = append(records, Record(item))
	}
	return records
}

// CanonicalDate returns the ISO-8601 form of the input when it parses,
// otherwise the raw input unchanged.
func CanonicalDate(s string) string {
	if when, ok := ParseWhen(s); ok {
		return when.Format(time.RFC3339)
	}
	return s
}

// ParseWhen parses a stored date string. The second return is false when
// the value cannot be attributed to a point in time.
func ParseWhen(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if when, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}

// ParseHours coerces a duration value to a finite non-negative float.
// Invalid values report ok=false and degrade to 0.
func ParseHours(v any) (float64, bool) {
	var hours float64
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		hours = val
	case float32:
		hours = float64(val)
	case int:
		hours = float64(val)
	case int64:
		hours = float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		hours = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		hours = f
	default:
		return 0, false
	}

	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0, false
	}
	return hours, true
}

// NewID synthesizes a record id: millisecond timestamp plus a random
// suffix, unique well beyond one import batch.
func NewID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func resolveValue(raw map[string]any, canonical string) any {
	for _, key := range fieldAliases[canonical] {
		if v, ok := raw[key]; ok && v != nil {
			if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
			return v
		}
	}
	return nil
}

func resolveString(raw map[string]any, canonical string) string {
	v := resolveValue(raw, canonical)
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func parseBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	case float64:
		return val != 0
	default:
		return false
	}
}
