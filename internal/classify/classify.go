package classify

import (
	"strings"

	"flighttrack/logbook/internal/models/entities"
	"flighttrack/logbook/internal/normalize"
)

// Canonical flight-type buckets. The set is closed: anything that does not
// match a bucket or one of its aliases lands in BucketUnknown.
const (
	BucketTraining  = "training"
	BucketCheck     = "check"
	BucketVIP       = "vip"
	BucketMedical   = "medical"
	BucketRescue    = "rescue"
	BucketOperation = "operation"
	BucketUnknown   = "unknown"
)

// typeAliases maps trimmed, case-folded labels (including the legacy
// Turkish keys and their spellings) onto canonical buckets.
var typeAliases = map[string]string{
	"training": BucketTraining, "egitim": BucketTraining, "eğitim": BucketTraining,
	"check": BucketCheck, "kontrol": BucketCheck,
	"vip":     BucketVIP,
	"medical": BucketMedical, "sihhiye": BucketMedical, "sıhhiye": BucketMedical,
	"rescue": BucketRescue, "kurtarma": BucketRescue,
	"operation": BucketOperation, "operasyon": BucketOperation, "operación": BucketOperation,
}

var nightTokens = map[string]bool{"night": true, "gece": true, "noche": true}

var dayTokens = map[string]bool{"day": true, "gunduz": true, "gündüz": true, "día": true, "dia": true}

// Classification carries the two categorical labels derived per record.
type Classification struct {
	TypeBucket string
	IsNight    bool
}

// Flight derives the type bucket and day/night label for a record.
// Pure and total: it always returns a bucket and a boolean.
func Flight(rec entities.FlightRecord) Classification {
	return Classification{
		TypeBucket: TypeBucket(rec.FlightType),
		IsNight:    IsNight(rec),
	}
}

// TypeBucket resolves a free-text flight type label to a canonical bucket.
func TypeBucket(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return BucketUnknown
	}
	if bucket, ok := typeAliases[key]; ok {
		return bucket
	}
	return BucketUnknown
}

// IsNight resolves the day/night label. Resolution order: the night-vision
// flag, then an explicit flight-time token, then the local hour of the
// flight date (night before 06:00 and from 18:00). Records without a
// parseable date default to day in the hour fallback.
func IsNight(rec entities.FlightRecord) bool {
	if rec.NightVision {
		return true
	}
	token := strings.ToLower(strings.TrimSpace(rec.FlightTime))
	if nightTokens[token] {
		return true
	}
	if dayTokens[token] {
		return false
	}
	when, ok := normalize.ParseWhen(rec.Date)
	if !ok {
		return false
	}
	hour := when.Local().Hour()
	return hour < 6 || hour >= 18
}
