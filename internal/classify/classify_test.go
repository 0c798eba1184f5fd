package classify

import (
	"testing"
	"time"

	"flighttrack/logbook/internal/models/entities"
)

func TestTypeBucket(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"training", BucketTraining},
		{"egitim", BucketTraining},
		{"Eğitim", BucketTraining},
		{"  CHECK  ", BucketCheck},
		{"kontrol", BucketCheck},
		{"VIP", BucketVIP},
		{"sıhhiye", BucketMedical},
		{"medical", BucketMedical},
		{"kurtarma", BucketRescue},
		{"operación", BucketOperation},
		{"operasyon", BucketOperation},
		{"", BucketUnknown},
		{"aerobatics", BucketUnknown},
	}

	for _, tc := range cases {
		if got := TypeBucket(tc.label); got != tc.want {
			t.Errorf("TypeBucket(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func localDate(hour int) string {
	return time.Date(2025, 11, 7, hour, 0, 0, 0, time.Local).Format(time.RFC3339)
}

func TestIsNight_HourFallback(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{3, true},
		{5, true},
		{6, false},
		{12, false},
		{17, false},
		{18, true},
		{23, true},
	}

	for _, tc := range cases {
		rec := entities.FlightRecord{Date: localDate(tc.hour)}
		if got := IsNight(rec); got != tc.want {
			t.Errorf("hour %d: IsNight = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestIsNight_Tokens(t *testing.T) {
	// explicit tokens win over the hour fallback
	rec := entities.FlightRecord{FlightTime: "night", Date: localDate(12)}
	if !IsNight(rec) {
		t.Error("explicit night token should classify as night at noon")
	}

	rec = entities.FlightRecord{FlightTime: "gece", Date: localDate(12)}
	if !IsNight(rec) {
		t.Error("gece should classify as night")
	}

	rec = entities.FlightRecord{FlightTime: "day", Date: localDate(3)}
	if IsNight(rec) {
		t.Error("explicit day token should classify as day at 03:00")
	}

	rec = entities.FlightRecord{FlightTime: "gündüz", Date: localDate(22)}
	if IsNight(rec) {
		t.Error("gündüz should classify as day")
	}
}

func TestIsNight_NightVisionWins(t *testing.T) {
	rec := entities.FlightRecord{NightVision: true, FlightTime: "day", Date: localDate(12)}
	if !IsNight(rec) {
		t.Error("night vision flag must force night even with a day token")
	}
}

func TestIsNight_UnparseableDateDefaultsToDay(t *testing.T) {
	rec := entities.FlightRecord{Date: "sometime"}
	if IsNight(rec) {
		t.Error("no derivable hour should default to day")
	}
}

func TestFlight(t *testing.T) {
	rec := entities.FlightRecord{FlightType: "rescue", Date: localDate(22)}
	c := Flight(rec)
	if c.TypeBucket != BucketRescue || !c.IsNight {
		t.Errorf("Flight() = %+v, want rescue/night", c)
	}
}
