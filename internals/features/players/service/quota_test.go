package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }
func f64(v float64) *float64         { return &v }

func TestEffectiveDuration(t *testing.T) {
	assert.Equal(t, 1.0, EffectiveDuration(nil), "only missing durations default")
	assert.Equal(t, 1.5, EffectiveDuration(f64(1.5)))
	assert.Equal(t, 0.5, EffectiveDuration(f64(0.5)))
	assert.Equal(t, 0.0, EffectiveDuration(f64(0)), "a stored zero stays zero")
}

func TestBelongsToCycle(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	win := CycleWindow{Start: start, End: &end}

	t.Run("tag match wins over window", func(t *testing.T) {
		f := AttendanceFact{PackageCycle: intPtr(2), SessionDate: start.AddDate(0, 0, 5)}
		assert.True(t, BelongsToCycle(f, 2, win))
		assert.False(t, BelongsToCycle(f, 1, win))
	})

	t.Run("untagged falls back to half-open window", func(t *testing.T) {
		inside := AttendanceFact{SessionDate: start.AddDate(0, 0, 10)}
		onStart := AttendanceFact{SessionDate: start}
		onEnd := AttendanceFact{SessionDate: end}
		before := AttendanceFact{SessionDate: start.AddDate(0, 0, -1)}

		assert.True(t, BelongsToCycle(inside, 1, win))
		assert.True(t, BelongsToCycle(onStart, 1, win))
		assert.False(t, BelongsToCycle(onEnd, 1, win), "end is exclusive")
		assert.False(t, BelongsToCycle(before, 1, win))
	})

	t.Run("unbounded window for current cycle", func(t *testing.T) {
		open := CycleWindow{Start: start}
		far := AttendanceFact{SessionDate: start.AddDate(1, 0, 0)}
		assert.True(t, BelongsToCycle(far, 1, open))
	})
}

func TestUsedHours(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	win := CycleWindow{Start: start}

	facts := []AttendanceFact{
		{Status: StatusPresent, Duration: f64(1.5), PackageCycle: intPtr(1), SessionDate: start},
		{Status: StatusPresent, Duration: nil, PackageCycle: intPtr(1), SessionDate: start.AddDate(0, 0, 2)},
		{Status: StatusAbsent, Duration: f64(2), PackageCycle: intPtr(1), SessionDate: start.AddDate(0, 0, 4)},
		{Status: StatusPending, PackageCycle: intPtr(1), SessionDate: start.AddDate(0, 0, 6)},
		{Status: StatusPresent, Duration: f64(1), PackageCycle: intPtr(2), SessionDate: start.AddDate(0, 0, 8)},
	}

	// present rows of cycle 1: 1.5 + default 1.0 = 2.5; absent/pending and
	// other cycles never count
	assert.Equal(t, 2.5, UsedHours(facts, 1, win))
	assert.Equal(t, 1.0, UsedHours(facts, 2, win))
}

func TestRemainingSessions(t *testing.T) {
	assert.Equal(t, 5.0, RemainingSessions(8, 3))
	assert.Equal(t, 0.0, RemainingSessions(8, 8))
	assert.Equal(t, 0.0, RemainingSessions(8, 11), "overuse clamps at zero")
}

func TestApplyAttendanceChange(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		remaining float64
		oldStatus string
		newStatus string
		oldDur    *float64
		newDur    *float64
		want      float64
	}{
		{"pending to present debits", 8, 5, StatusPending, StatusPresent, nil, f64(1.5), 3.5},
		{"pending to present default duration", 8, 5, StatusPending, StatusPresent, nil, nil, 4},
		{"present to absent credits", 8, 5, StatusPresent, StatusAbsent, f64(2), f64(2), 7},
		{"absent to pending is a no-op", 8, 5, StatusAbsent, StatusPending, nil, nil, 5},
		{"debit clamps at zero", 8, 0.5, StatusPending, StatusPresent, nil, f64(2), 0},
		{"credit clamps at total", 8, 7.5, StatusPresent, StatusAbsent, f64(2), f64(2), 8},
		{"present duration edit 1 to 2", 8, 5, StatusPresent, StatusPresent, f64(1), f64(2), 4},
		{"present duration edit 2 to 1", 8, 5, StatusPresent, StatusPresent, f64(2), f64(1), 6},
		{"present same duration untouched", 8, 5, StatusPresent, StatusPresent, f64(1.5), f64(1.5), 5},
		{"present nil to default same value untouched", 8, 5, StatusPresent, StatusPresent, nil, f64(1), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyAttendanceChange(tc.total, tc.remaining, tc.oldStatus, tc.newStatus, tc.oldDur, tc.newDur)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyAttendanceChangeTwoStepClamp(t *testing.T) {
	// remaining already at total, duration edit 1 → 3: the credit step clamps
	// at the total (8), then the debit lands on 5. A naive single diff
	// (8 + 1 - 3 = 6) diverges here.
	got := ApplyAttendanceChange(8, 8, StatusPresent, StatusPresent, f64(1), f64(3))
	assert.Equal(t, 5.0, got)
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	yesterday := datePtr(now.AddDate(0, 0, -1))
	tomorrow := datePtr(now.AddDate(0, 0, 1))
	today := datePtr(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name       string
		total      float64
		remaining  float64
		used       float64
		expiration *time.Time
		want       PackageStatus
	}{
		{"ongoing with quota and time left", 8, 5, 3, tomorrow, PackageOngoing},
		{"ongoing with no expiration", 8, 5, 3, nil, PackageOngoing},
		{"completed when remaining hits zero", 8, 0, 8, tomorrow, PackageCompleted},
		{"completed when used reaches total", 8, 2, 8, tomorrow, PackageCompleted},
		{"expired when date passed", 8, 5, 3, yesterday, PackageExpired},
		{"expired wins over completed", 8, 0, 8, yesterday, PackageExpired},
		{"expiration day itself still ongoing", 8, 5, 3, today, PackageOngoing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.total, tc.remaining, tc.used, tc.expiration, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenewalReason(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	yesterday := datePtr(now.AddDate(0, 0, -1))
	tomorrow := datePtr(now.AddDate(0, 0, 1))

	assert.Equal(t, ReasonRenewalExpired, RenewalReason(8, 0, 8, yesterday, now),
		"expired checked before completed")
	assert.Equal(t, ReasonRenewalCompleted, RenewalReason(8, 0, 8, tomorrow, now))
	assert.Equal(t, ReasonRenewalEarly, RenewalReason(8, 5, 3, tomorrow, now))
	assert.Equal(t, ReasonRenewalEarly, RenewalReason(8, 5, 3, nil, now))
}

func TestQuotaScenarioFullCycle(t *testing.T) {
	// A player with an 8-session package attends, gets corrected, and the
	// mirror must track the derived value throughout.
	total := 8.0
	remaining := total

	// three presents of 1h each
	for i := 0; i < 3; i++ {
		remaining = ApplyAttendanceChange(total, remaining, StatusPending, StatusPresent, nil, nil)
	}
	require.Equal(t, 5.0, remaining)

	// one of them was actually 2h
	remaining = ApplyAttendanceChange(total, remaining, StatusPresent, StatusPresent, f64(1), f64(2))
	require.Equal(t, 4.0, remaining)

	// another turns out to be a mistake, flip to absent
	remaining = ApplyAttendanceChange(total, remaining, StatusPresent, StatusAbsent, nil, nil)
	require.Equal(t, 5.0, remaining)

	// derived view agrees with the mirror
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	facts := []AttendanceFact{
		{Status: StatusPresent, Duration: f64(2), PackageCycle: intPtr(1), SessionDate: start},
		{Status: StatusPresent, Duration: nil, PackageCycle: intPtr(1), SessionDate: start.AddDate(0, 0, 2)},
		{Status: StatusAbsent, Duration: nil, PackageCycle: intPtr(1), SessionDate: start.AddDate(0, 0, 4)},
	}
	used := UsedHours(facts, 1, CycleWindow{Start: start})
	assert.Equal(t, remaining, RemainingSessions(total, used))
}

func intPtr(v int) *int { return &v }
