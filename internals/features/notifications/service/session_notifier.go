package service

import (
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notifModel "coachdesk_backend/internals/features/notifications/model"
	playerModel "coachdesk_backend/internals/features/players/model"
	sessionModel "coachdesk_backend/internals/features/schedule/sessions/model"
)

// NotifySessionScheduled emails every enrolled player about a session.
// Fire-and-forget: failures are logged per recipient, never bubbled up.
func NotifySessionScheduled(db *gorm.DB, sessionID uuid.UUID, playerIDs []uuid.UUID) {
	if defaultMailer == nil || len(playerIDs) == 0 {
		return
	}

	var session sessionModel.TrainingSessionModel
	if err := db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		log.Printf("[ERROR] session notify: load session %s: %v", sessionID, err)
		return
	}

	var players []playerModel.PlayerModel
	if err := db.Where("player_id IN ?", playerIDs).Find(&players).Error; err != nil {
		log.Printf("[ERROR] session notify: load players: %v", err)
		return
	}

	subject := fmt.Sprintf("Training session on %s", session.SessionDate.Format("Mon, 2 Jan 2006"))
	for _, p := range players {
		if p.PlayerEmail == nil || *p.PlayerEmail == "" {
			continue
		}

		body := fmt.Sprintf(
			"Hi %s,\n\nYou are scheduled for training on %s, %s-%s.\n\nSee you on court!",
			p.PlayerName,
			session.SessionDate.Format("Monday, 2 January 2006"),
			session.SessionStartTime,
			session.SessionEndTime,
		)

		sendErr := defaultMailer.Send(p.PlayerName, *p.PlayerEmail, subject, body)
		if sendErr != nil {
			log.Printf("[ERROR] session notify: mail to %s: %v", *p.PlayerEmail, sendErr)
		}

		logNotification(db, &p, &session, subject, body, sendErr)
	}
}

func logNotification(db *gorm.DB, p *playerModel.PlayerModel, s *sessionModel.TrainingSessionModel, subject, body string, sendErr error) {
	payload, _ := sonic.Marshal(map[string]string{
		"subject": subject,
		"body":    body,
	})

	entry := notifModel.NotificationLogModel{
		NotificationLogPlayerID:  &p.PlayerID,
		NotificationLogSessionID: &s.SessionID,
		NotificationLogChannel:   "email",
		NotificationLogRecipient: *p.PlayerEmail,
		NotificationLogPayload:   datatypes.JSON(payload),
		NotificationLogSuccess:   sendErr == nil,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		entry.NotificationLogError = &msg
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] session notify: write log: %v", err)
	}
}
