// file: internals/features/players/service/cycles.go
//
// Package-cycle reconciliation: rebuilds the ordered sequence of cycles for
// display and audit, pairing each archived snapshot with its window and the
// attendance attributable to it.
package service

import (
	"sort"
	"time"

	model "coachdesk_backend/internals/features/players/model"
)

// Cycle is one reconstructed package cycle, oldest→newest, 1-based
type Cycle struct {
	CycleNumber       int        `json:"cycle_number"`
	PackageType       *string    `json:"package_type,omitempty"`
	Sessions          float64    `json:"sessions"`
	RemainingSessions float64    `json:"remaining_sessions"`
	Reason            string     `json:"reason,omitempty"`
	Start             time.Time  `json:"start"`
	End               *time.Time `json:"end,omitempty"`
	AttendedHours     float64    `json:"attended_hours"`
	CapturedAt        time.Time  `json:"captured_at"`
}

// CurrentCycleNumber: N history entries → live cycle is N+1
func CurrentCycleNumber(historyCount int) int {
	return historyCount + 1
}

// CurrentCycleWindow derives the live cycle's window: start is the most
// recent archival (or enrollment when no history), end is the current
// expiration (nil = unbounded).
func CurrentCycleWindow(p *model.PlayerModel, entries []model.PackageHistoryModel) CycleWindow {
	var start time.Time
	if n := len(entries); n > 0 {
		start = entries[n-1].PackageHistoryCapturedAt
	} else if p.PlayerEnrollmentDate != nil {
		start = *p.PlayerEnrollmentDate
	}
	return CycleWindow{Start: start, End: p.PlayerExpirationDate}
}

// historyWindow derives the window of archived entry i (entries sorted by
// captured_at ascending): start = enrollment ?? captured_at, end = next
// entry's captured_at ?? expiration ?? captured_at.
func historyWindow(entries []model.PackageHistoryModel, i int) CycleWindow {
	e := entries[i]

	start := e.PackageHistoryCapturedAt
	if e.PackageHistoryEnrollmentDate != nil {
		start = *e.PackageHistoryEnrollmentDate
	}

	var end time.Time
	switch {
	case i+1 < len(entries):
		end = entries[i+1].PackageHistoryCapturedAt
	case e.PackageHistoryExpirationDate != nil:
		end = *e.PackageHistoryExpirationDate
	default:
		end = e.PackageHistoryCapturedAt
	}
	return CycleWindow{Start: start, End: &end}
}

// AssembleCycles pairs every archived entry, plus the live state, with its
// window and attended hours. Attribution prefers the stored cycle tag; legacy
// untagged rows fall back to [start, end) membership, with the final/current
// cycle unbounded at the top when it has no expiration.
func AssembleCycles(p *model.PlayerModel, entries []model.PackageHistoryModel, facts []AttendanceFact) []Cycle {
	sorted := make([]model.PackageHistoryModel, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].PackageHistoryCapturedAt.Before(sorted[b].PackageHistoryCapturedAt)
	})

	out := make([]Cycle, 0, len(sorted)+1)
	for i, e := range sorted {
		win := historyWindow(sorted, i)
		num := i + 1
		out = append(out, Cycle{
			CycleNumber:       num,
			PackageType:       e.PackageHistoryPackageType,
			Sessions:          e.PackageHistorySessions,
			RemainingSessions: e.PackageHistoryRemainingSessions,
			Reason:            e.PackageHistoryReason,
			Start:             win.Start,
			End:               win.End,
			AttendedHours:     UsedHours(facts, num, win),
			CapturedAt:        e.PackageHistoryCapturedAt,
		})
	}

	// Live cycle, only when the player actually holds a package
	if p != nil && (p.PlayerPackageType != nil || p.PlayerSessions > 0) {
		win := CurrentCycleWindow(p, sorted)
		num := CurrentCycleNumber(len(sorted))
		out = append(out, Cycle{
			CycleNumber:       num,
			PackageType:       p.PlayerPackageType,
			Sessions:          p.PlayerSessions,
			RemainingSessions: p.PlayerRemainingSessions,
			Start:             win.Start,
			End:               win.End,
			AttendedHours:     UsedHours(facts, num, win),
			CapturedAt:        p.PlayerCreatedAt,
		})
	}

	return out
}

// snapshotOf freezes the player's live package fields into a history row
func snapshotOf(p *model.PlayerModel, reason string) *model.PackageHistoryModel {
	return &model.PackageHistoryModel{
		PackageHistoryPlayerID:          p.PlayerID,
		PackageHistoryPackageType:       p.PlayerPackageType,
		PackageHistorySessions:          p.PlayerSessions,
		PackageHistoryRemainingSessions: p.PlayerRemainingSessions,
		PackageHistoryEnrollmentDate:    p.PlayerEnrollmentDate,
		PackageHistoryExpirationDate:    p.PlayerExpirationDate,
		PackageHistoryReason:            reason,
	}
}
