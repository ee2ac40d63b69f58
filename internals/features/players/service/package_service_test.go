package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachdesk_backend/internals/constants"
	model "coachdesk_backend/internals/features/players/model"
)

func TestApplyRenewalResetsQuota(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	oldPkg := "standard-8"
	oldExp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	p := &model.PlayerModel{
		PlayerPackageType:       &oldPkg,
		PlayerSessions:          8,
		PlayerRemainingSessions: 3, // leftover must NOT carry into the new cycle
		PlayerEnrollmentDate:    datePtr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		PlayerExpirationDate:    &oldExp,
	}

	newExp := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	applyRenewal(p, "intensive-12", 12, nil, &newExp, now)

	require.NotNil(t, p.PlayerPackageType)
	assert.Equal(t, "intensive-12", *p.PlayerPackageType)
	assert.Equal(t, 12.0, p.PlayerSessions)
	assert.Equal(t, 12.0, p.PlayerRemainingSessions, "fresh quota, leftover discarded")
	require.NotNil(t, p.PlayerEnrollmentDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *p.PlayerEnrollmentDate,
		"enrollment defaults to today when not supplied")
	require.NotNil(t, p.PlayerExpirationDate)
	assert.Equal(t, newExp, *p.PlayerExpirationDate)
}

func TestApplyRenewalExplicitDates(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	enrollment := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	p := &model.PlayerModel{}
	applyRenewal(p, "standard-8", 8, &enrollment, nil, now)

	require.NotNil(t, p.PlayerEnrollmentDate)
	assert.Equal(t, enrollment, *p.PlayerEnrollmentDate)
	assert.Nil(t, p.PlayerExpirationDate, "no expiration means unbounded cycle")
	assert.Equal(t, 8.0, p.PlayerRemainingSessions)
}

func TestApplyRetrieval(t *testing.T) {
	expiration := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("extend only leaves quota untouched", func(t *testing.T) {
		p := &model.PlayerModel{
			PlayerSessions:          8,
			PlayerRemainingSessions: 2.5,
			PlayerExpirationDate:    datePtr(expiration),
		}

		require.NoError(t, applyRetrieval(p, 30, nil))

		require.NotNil(t, p.PlayerExpirationDate)
		assert.Equal(t, expiration.AddDate(0, 0, 30), *p.PlayerExpirationDate)
		assert.Equal(t, 8.0, p.PlayerSessions)
		assert.Equal(t, 2.5, p.PlayerRemainingSessions, "no new count, usage preserved")
	})

	t.Run("new session total resets the grant", func(t *testing.T) {
		p := &model.PlayerModel{
			PlayerSessions:          8,
			PlayerRemainingSessions: 0,
			PlayerExpirationDate:    datePtr(expiration),
		}

		require.NoError(t, applyRetrieval(p, 14, f64(10)))

		assert.Equal(t, expiration.AddDate(0, 0, 14), *p.PlayerExpirationDate)
		assert.Equal(t, 10.0, p.PlayerSessions)
		assert.Equal(t, 10.0, p.PlayerRemainingSessions, "prior usage discarded")
	})

	t.Run("no expiration to extend is rejected", func(t *testing.T) {
		p := &model.PlayerModel{PlayerSessions: 8}

		err := applyRetrieval(p, 30, nil)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})
}

func TestResolveSessionCount(t *testing.T) {
	admin := Actor{Role: constants.RoleAdmin}
	coach := Actor{Role: constants.RoleCoach}

	t.Run("nil falls back to the default for anyone", func(t *testing.T) {
		for _, actor := range []Actor{admin, coach} {
			got, err := ResolveSessionCount(actor, nil)
			require.NoError(t, err)
			assert.Equal(t, constants.DefaultSessionCount, got)
		}
	})

	t.Run("admin may set a custom count", func(t *testing.T) {
		got, err := ResolveSessionCount(admin, f64(12))
		require.NoError(t, err)
		assert.Equal(t, 12.0, got)
	})

	t.Run("coach custom count is forbidden", func(t *testing.T) {
		_, err := ResolveSessionCount(coach, f64(12))
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusForbidden, fe.Code)
	})

	t.Run("non-positive count is rejected", func(t *testing.T) {
		_, err := ResolveSessionCount(admin, f64(0))
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})
}
