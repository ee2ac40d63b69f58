package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "coachdesk_backend/internals/features/players/model"
)

func TestCurrentCycleNumber(t *testing.T) {
	assert.Equal(t, 1, CurrentCycleNumber(0))
	assert.Equal(t, 2, CurrentCycleNumber(1))
	assert.Equal(t, 4, CurrentCycleNumber(3))
}

func TestCurrentCycleWindow(t *testing.T) {
	enrollment := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	expiration := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no history starts at enrollment", func(t *testing.T) {
		p := &model.PlayerModel{
			PlayerEnrollmentDate: datePtr(enrollment),
			PlayerExpirationDate: datePtr(expiration),
		}
		win := CurrentCycleWindow(p, nil)
		assert.Equal(t, enrollment, win.Start)
		require.NotNil(t, win.End)
		assert.Equal(t, expiration, *win.End)
	})

	t.Run("history shifts start to last archival", func(t *testing.T) {
		captured := time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)
		p := &model.PlayerModel{PlayerEnrollmentDate: datePtr(enrollment)}
		entries := []model.PackageHistoryModel{
			{PackageHistoryCapturedAt: captured.AddDate(0, -1, 0)},
			{PackageHistoryCapturedAt: captured},
		}
		win := CurrentCycleWindow(p, entries)
		assert.Equal(t, captured, win.Start)
		assert.Nil(t, win.End, "no expiration means unbounded")
	})
}

func TestAssembleCycles(t *testing.T) {
	playerID := uuid.New()
	enroll1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	captured1 := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	pkgA := "standard-8"
	pkgB := "standard-8"

	player := &model.PlayerModel{
		PlayerID:                playerID,
		PlayerPackageType:       &pkgB,
		PlayerSessions:          8,
		PlayerRemainingSessions: 6,
		PlayerEnrollmentDate:    datePtr(captured1),
		PlayerCreatedAt:         enroll1,
	}

	entries := []model.PackageHistoryModel{
		{
			PackageHistoryPlayerID:          playerID,
			PackageHistoryPackageType:       &pkgA,
			PackageHistorySessions:          8,
			PackageHistoryRemainingSessions: 0,
			PackageHistoryEnrollmentDate:    datePtr(enroll1),
			PackageHistoryReason:            ReasonRenewalCompleted,
			PackageHistoryCapturedAt:        captured1,
		},
	}

	facts := []AttendanceFact{
		// cycle 1, fully tagged
		{Status: StatusPresent, Duration: f64(1), PackageCycle: intPtr(1), SessionDate: enroll1.AddDate(0, 0, 3)},
		{Status: StatusPresent, Duration: f64(1), PackageCycle: intPtr(1), SessionDate: enroll1.AddDate(0, 0, 10)},
		// legacy untagged row inside cycle 1's window
		{Status: StatusPresent, Duration: f64(2), SessionDate: enroll1.AddDate(0, 0, 20)},
		// cycle 2
		{Status: StatusPresent, Duration: f64(1), PackageCycle: intPtr(2), SessionDate: captured1.AddDate(0, 0, 5)},
		// untagged after the archival lands in the live cycle
		{Status: StatusPresent, Duration: f64(1), SessionDate: captured1.AddDate(0, 0, 12)},
	}

	cycles := AssembleCycles(player, entries, facts)
	require.Len(t, cycles, 2)

	archived := cycles[0]
	assert.Equal(t, 1, archived.CycleNumber)
	assert.Equal(t, ReasonRenewalCompleted, archived.Reason)
	assert.Equal(t, enroll1, archived.Start, "archived start prefers snapshot enrollment")
	require.NotNil(t, archived.End)
	assert.Equal(t, captured1, *archived.End)
	assert.Equal(t, 4.0, archived.AttendedHours, "tagged 1+1 plus legacy 2")

	live := cycles[1]
	assert.Equal(t, 2, live.CycleNumber)
	assert.Empty(t, live.Reason)
	assert.Equal(t, captured1, live.Start)
	assert.Nil(t, live.End)
	assert.Equal(t, 2.0, live.AttendedHours)
}

func TestAssembleCyclesNoPackage(t *testing.T) {
	p := &model.PlayerModel{PlayerID: uuid.New()}
	cycles := AssembleCycles(p, nil, nil)
	assert.Empty(t, cycles, "a player without a package has no live cycle")
}

func TestSnapshotOf(t *testing.T) {
	pkg := "intensive-12"
	enrollment := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	p := &model.PlayerModel{
		PlayerID:                uuid.New(),
		PlayerPackageType:       &pkg,
		PlayerSessions:          12,
		PlayerRemainingSessions: 2.5,
		PlayerEnrollmentDate:    datePtr(enrollment),
	}

	snap := snapshotOf(p, ReasonRenewalEarly)
	assert.Equal(t, p.PlayerID, snap.PackageHistoryPlayerID)
	assert.Equal(t, &pkg, snap.PackageHistoryPackageType)
	assert.Equal(t, 12.0, snap.PackageHistorySessions)
	assert.Equal(t, 2.5, snap.PackageHistoryRemainingSessions)
	assert.Equal(t, ReasonRenewalEarly, snap.PackageHistoryReason)
}
