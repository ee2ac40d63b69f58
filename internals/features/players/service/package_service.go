// file: internals/features/players/service/package_service.go
//
// Transactional write paths of the quota ledger. Every path runs in one
// transaction holding a FOR UPDATE lock on the player row, so attendance
// deltas and recompute-from-attendance paths serialize per player.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coachdesk_backend/internals/constants"
	model "coachdesk_backend/internals/features/players/model"
)

// Actor identifies who is performing a ledger write (spec'd explicitly,
// never read from ambient state)
type Actor struct {
	UserID uuid.UUID
	Role   string
}

type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

/* ======================= INPUTS ======================= */

type RenewPackageInput struct {
	PackageType    string
	Sessions       *float64 // admin only; others get the default quota
	EnrollmentDate *time.Time
	ExpirationDate *time.Time
}

/* ======================= READ PATH ======================= */

// QuotaView is the derived quota state of the current cycle
type QuotaView struct {
	CycleNumber       int           `json:"cycle_number"`
	UsedHours         float64       `json:"used_hours"`
	RemainingSessions float64       `json:"remaining_sessions"`
	Status            PackageStatus `json:"status"`
}

// CurrentQuota re-derives used/remaining from attendance for the current
// cycle. This is the authoritative derivation; player_remaining_sessions is
// the incrementally maintained mirror.
func (s *PackageService) CurrentQuota(ctx context.Context, p *model.PlayerModel) (QuotaView, error) {
	db := s.DB.WithContext(ctx)

	entries, err := s.historyEntries(db, p.PlayerID)
	if err != nil {
		return QuotaView{}, err
	}
	facts, err := s.attendanceFacts(db, p.PlayerID)
	if err != nil {
		return QuotaView{}, err
	}

	cycle := CurrentCycleNumber(len(entries))
	win := CurrentCycleWindow(p, entries)
	used := UsedHours(facts, cycle, win)
	remaining := RemainingSessions(p.PlayerSessions, used)

	return QuotaView{
		CycleNumber:       cycle,
		UsedHours:         used,
		RemainingSessions: remaining,
		Status:            DeriveStatus(p.PlayerSessions, remaining, used, p.PlayerExpirationDate, time.Now()),
	}, nil
}

// Cycles reconstructs the full cycle history for display/audit
func (s *PackageService) Cycles(ctx context.Context, p *model.PlayerModel) ([]Cycle, error) {
	db := s.DB.WithContext(ctx)

	entries, err := s.historyEntries(db, p.PlayerID)
	if err != nil {
		return nil, err
	}
	facts, err := s.attendanceFacts(db, p.PlayerID)
	if err != nil {
		return nil, err
	}
	return AssembleCycles(p, entries, facts), nil
}

// CurrentCycleFor returns the live cycle number used to tag new attendance rows
func (s *PackageService) CurrentCycleFor(tx *gorm.DB, playerID uuid.UUID) (int, error) {
	var count int64
	if err := tx.Model(&model.PackageHistoryModel{}).
		Where("package_history_player_id = ?", playerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return CurrentCycleNumber(int(count)), nil
}

/* ======================= WRITE PATHS ======================= */

// applyRenewal installs the new package on the live row. The quota is always
// fresh: any leftover remaining is discarded, never carried forward.
func applyRenewal(p *model.PlayerModel, packageType string, sessions float64, enrollment, expiration *time.Time, now time.Time) {
	if enrollment == nil {
		d := dateOnly(now)
		enrollment = &d
	}
	p.PlayerPackageType = &packageType
	p.PlayerSessions = sessions
	p.PlayerRemainingSessions = sessions
	p.PlayerEnrollmentDate = enrollment
	p.PlayerExpirationDate = expiration
}

// applyRetrieval extends the current expiration by extendDays. When a new
// session total is supplied the grant is treated as fresh: both sessions and
// remaining reset, prior usage discarded; without one the quota is untouched.
func applyRetrieval(p *model.PlayerModel, extendDays int, newSessions *float64) error {
	if p.PlayerExpirationDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Player has no expiration date to extend")
	}

	newExp := p.PlayerExpirationDate.AddDate(0, 0, extendDays)
	p.PlayerExpirationDate = &newExp

	if newSessions != nil {
		p.PlayerSessions = *newSessions
		p.PlayerRemainingSessions = *newSessions
	}
	return nil
}

// RenewPackage archives the current cycle (when one exists) and installs the
// new package with a fresh quota, discarding any leftover.
func (s *PackageService) RenewPackage(ctx context.Context, actor Actor, playerID uuid.UUID, in RenewPackageInput) (*model.PlayerModel, error) {
	sessions, err := ResolveSessionCount(actor, in.Sessions)
	if err != nil {
		return nil, err
	}

	var out model.PlayerModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockPlayer(tx, playerID)
		if err != nil {
			return err
		}

		if hasPackage(p) {
			entries, err := s.historyEntries(tx, playerID)
			if err != nil {
				return err
			}
			facts, err := s.attendanceFacts(tx, playerID)
			if err != nil {
				return err
			}
			cycle := CurrentCycleNumber(len(entries))
			win := CurrentCycleWindow(p, entries)
			used := UsedHours(facts, cycle, win)

			reason := RenewalReason(p.PlayerSessions, p.PlayerRemainingSessions, used, p.PlayerExpirationDate, time.Now())
			if err := tx.Create(snapshotOf(p, reason)).Error; err != nil {
				return err
			}
		}

		applyRenewal(p, in.PackageType, sessions, in.EnrollmentDate, in.ExpirationDate, time.Now())

		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ExpirePackage ends the live cycle today with no quota left. A live-state
// transition: no history row is written.
func (s *PackageService) ExpirePackage(ctx context.Context, playerID uuid.UUID) (*model.PlayerModel, error) {
	var out model.PlayerModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockPlayer(tx, playerID)
		if err != nil {
			return err
		}

		today := dateOnly(time.Now())
		p.PlayerExpirationDate = &today
		p.PlayerRemainingSessions = 0

		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrievePackage reactivates an expired package by extending the current
// expiration. When a new session total is supplied the grant is treated as
// fresh: both sessions and remaining are reset, prior usage discarded.
func (s *PackageService) RetrievePackage(ctx context.Context, actor Actor, playerID uuid.UUID, extendDays int, newSessions *float64) (*model.PlayerModel, error) {
	if extendDays <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "extend_days must be positive")
	}
	if newSessions != nil {
		if _, err := ResolveSessionCount(actor, newSessions); err != nil {
			return nil, err
		}
	}

	var out model.PlayerModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockPlayer(tx, playerID)
		if err != nil {
			return err
		}

		if err := applyRetrieval(p, extendDays, newSessions); err != nil {
			return err
		}

		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EditSessions changes the cycle's total quota. Remaining is recomputed from
// attendance against the new total, never carried over arithmetically.
func (s *PackageService) EditSessions(ctx context.Context, actor Actor, playerID uuid.UUID, newTotal float64) (*model.PlayerModel, error) {
	if actor.Role != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("session quota editing"))
	}
	if newTotal <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "sessions must be positive")
	}

	var out model.PlayerModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockPlayer(tx, playerID)
		if err != nil {
			return err
		}

		entries, err := s.historyEntries(tx, playerID)
		if err != nil {
			return err
		}
		facts, err := s.attendanceFacts(tx, playerID)
		if err != nil {
			return err
		}

		cycle := CurrentCycleNumber(len(entries))
		win := CurrentCycleWindow(p, entries)
		used := UsedHours(facts, cycle, win)

		p.PlayerSessions = newTotal
		p.PlayerRemainingSessions = RemainingSessions(newTotal, used)

		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdjustForAttendanceChange applies the quota delta of one attendance
// transition. Runs inside the caller's transaction so the row write and the
// quota update commit together.
func (s *PackageService) AdjustForAttendanceChange(tx *gorm.DB, playerID uuid.UUID, oldStatus, newStatus string, oldDur, newDur *float64) error {
	p, err := lockPlayer(tx, playerID)
	if err != nil {
		return err
	}

	next := ApplyAttendanceChange(p.PlayerSessions, p.PlayerRemainingSessions, oldStatus, newStatus, oldDur, newDur)
	if next == p.PlayerRemainingSessions {
		return nil
	}

	return tx.Model(&model.PlayerModel{}).
		Where("player_id = ?", playerID).
		Update("player_remaining_sessions", next).Error
}

/* ======================= INTERNALS ======================= */

func lockPlayer(tx *gorm.DB, playerID uuid.UUID) (*model.PlayerModel, error) {
	var p model.PlayerModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_id = ?", playerID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		return nil, err
	}
	return &p, nil
}

func hasPackage(p *model.PlayerModel) bool {
	return p.PlayerPackageType != nil || p.PlayerSessions > 0
}

// ResolveSessionCount enforces the session-count role policy: callers that
// supply no count get the default quota, arbitrary counts are admin only.
func ResolveSessionCount(actor Actor, requested *float64) (float64, error) {
	if requested == nil {
		return constants.DefaultSessionCount, nil
	}
	if actor.Role != constants.RoleAdmin {
		return 0, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("custom session counts"))
	}
	if *requested <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "sessions must be positive")
	}
	return *requested, nil
}

func (s *PackageService) historyEntries(tx *gorm.DB, playerID uuid.UUID) ([]model.PackageHistoryModel, error) {
	var entries []model.PackageHistoryModel
	err := tx.
		Where("package_history_player_id = ?", playerID).
		Order("package_history_captured_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *PackageService) attendanceFacts(tx *gorm.DB, playerID uuid.UUID) ([]AttendanceFact, error) {
	var facts []AttendanceFact
	err := tx.Table("attendance_records AS ar").
		Select("ar.attendance_status AS status, ar.attendance_session_duration AS duration, ar.attendance_package_cycle AS package_cycle, ts.session_date AS session_date").
		Joins("JOIN training_sessions ts ON ts.session_id = ar.attendance_session_id").
		Where("ar.attendance_player_id = ?", playerID).
		Scan(&facts).Error
	return facts, err
}
