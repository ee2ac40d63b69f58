// file: internals/features/players/service/quota.go
//
// Quota ledger for the player's current package cycle. Pure derivation
// functions live here; the transactional write paths are in
// package_service.go. remaining_sessions is always clamped to
// [0, player_sessions].
package service

import (
	"time"
)

// Attendance statuses as stored on attendance_records
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusPending = "pending"
)

// PackageStatus of a cycle (live or archived)
type PackageStatus string

const (
	PackageOngoing   PackageStatus = "ongoing"
	PackageCompleted PackageStatus = "completed"
	PackageExpired   PackageStatus = "expired"
)

// AttendanceFact is the slice of an attendance row the ledger needs,
// joined with the session date for legacy rows without a cycle tag.
type AttendanceFact struct {
	Status       string    `gorm:"column:status"`
	Duration     *float64  `gorm:"column:duration"`
	PackageCycle *int      `gorm:"column:package_cycle"`
	SessionDate  time.Time `gorm:"column:session_date"`
}

// CycleWindow is the half-open date range [Start, End) of one cycle.
// End == nil means unbounded (the current cycle with no expiration).
type CycleWindow struct {
	Start time.Time
	End   *time.Time
}

func (w CycleWindow) Contains(date time.Time) bool {
	if date.Before(w.Start) {
		return false
	}
	if w.End != nil && !date.Before(*w.End) {
		return false
	}
	return true
}

// EffectiveDuration applies the 1-hour default to rows with no stored
// duration. A stored value is taken as-is; input validation keeps it positive.
func EffectiveDuration(d *float64) float64 {
	if d == nil {
		return 1
	}
	return *d
}

// BelongsToCycle resolves cycle membership: exact tag match wins, legacy
// untagged rows fall back to the date window. The fallback is a heuristic,
// not a guaranteed backfill.
func BelongsToCycle(f AttendanceFact, cycle int, w CycleWindow) bool {
	if f.PackageCycle != nil {
		return *f.PackageCycle == cycle
	}
	return w.Contains(f.SessionDate)
}

// UsedHours sums session durations over present records in the cycle
func UsedHours(facts []AttendanceFact, cycle int, w CycleWindow) float64 {
	var used float64
	for _, f := range facts {
		if f.Status != StatusPresent {
			continue
		}
		if !BelongsToCycle(f, cycle, w) {
			continue
		}
		used += EffectiveDuration(f.Duration)
	}
	return used
}

// RemainingSessions = max(0, total - used)
func RemainingSessions(total, used float64) float64 {
	if r := total - used; r > 0 {
		return r
	}
	return 0
}

// ApplyAttendanceChange adjusts remaining for a status/duration transition.
// The present→present duration edit is applied as two clamped steps (credit
// the old duration, then debit the new one), not a single diff.
func ApplyAttendanceChange(total, remaining float64, oldStatus, newStatus string, oldDur, newDur *float64) float64 {
	wasPresent := oldStatus == StatusPresent
	isPresent := newStatus == StatusPresent

	switch {
	case !wasPresent && isPresent:
		remaining = clampFloor(remaining - EffectiveDuration(newDur))
	case wasPresent && !isPresent:
		remaining = clampCeil(remaining+EffectiveDuration(oldDur), total)
	case wasPresent && isPresent:
		if EffectiveDuration(oldDur) == EffectiveDuration(newDur) {
			return remaining
		}
		remaining = clampCeil(remaining+EffectiveDuration(oldDur), total)
		remaining = clampFloor(remaining - EffectiveDuration(newDur))
	}
	return remaining
}

// DeriveStatus classifies a cycle from (total, remaining, used, expiration).
// Expiration is checked before completion everywhere: a lapsed-but-unused
// package reads expired, not completed. Pure function of its inputs.
func DeriveStatus(total, remaining, used float64, expiration *time.Time, now time.Time) PackageStatus {
	if expirationPassed(expiration, now) {
		return PackageExpired
	}
	if remaining <= 0 || (total > 0 && used >= total) {
		return PackageCompleted
	}
	return PackageOngoing
}

// Archival reason tags for package_history rows
const (
	ReasonRenewalExpired   = "renewal - expired"
	ReasonRenewalCompleted = "renewal - completed"
	ReasonRenewalEarly     = "renewal - early"
)

// RenewalReason tags the outgoing cycle at archival time. Same precedence
// as DeriveStatus: expired before completed.
func RenewalReason(total, remaining, used float64, expiration *time.Time, now time.Time) string {
	if expirationPassed(expiration, now) {
		return ReasonRenewalExpired
	}
	if remaining <= 0 || (total > 0 && used >= total) {
		return ReasonRenewalCompleted
	}
	return ReasonRenewalEarly
}

// expirationPassed: the expiration date is strictly before today's date
func expirationPassed(expiration *time.Time, now time.Time) bool {
	if expiration == nil {
		return false
	}
	return dateOnly(*expiration).Before(dateOnly(now))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampCeil(v, max float64) float64 {
	if max > 0 && v > max {
		return max
	}
	return v
}
