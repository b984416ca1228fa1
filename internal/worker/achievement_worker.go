package worker

// achievement_worker.go
// Re-evaluates achievement milestones after a shift write. Unlocks are
// persisted by the checker; when SMTP is configured a short notification
// is mailed to the account owner's address.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"shifttrack/internal/infra"
	"shifttrack/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AchievementJobPayload is the job envelope sent to QueueAchievements.
type AchievementJobPayload struct {
	UserID string `json:"user_id"`
}

// AchievementChecker is implemented by the achievement service.
type AchievementChecker interface {
	CheckAchievements(ctx context.Context, userID uuid.UUID) ([]model.Achievement, error)
}

type AchievementWorker struct {
	checker     AchievementChecker
	mailer      *infra.Mailer
	notifyEmail string
}

func NewAchievementWorker(checker AchievementChecker, mailer *infra.Mailer, notifyEmail string) *AchievementWorker {
	return &AchievementWorker{checker: checker, mailer: mailer, notifyEmail: notifyEmail}
}

// Process evaluates milestones for one user and sends the optional email.
func (w *AchievementWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AchievementJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("achievement_worker: invalid payload")
		return
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Error().Err(err).Msg("achievement_worker: bad user id")
		return
	}

	unlocked, err := w.checker.CheckAchievements(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("achievement_worker: check failed")
		return
	}
	if len(unlocked) == 0 {
		return
	}
	log.Info().Str("user_id", payload.UserID).Int("count", len(unlocked)).Msg("achievements unlocked")

	if w.mailer == nil || !w.mailer.Configured() || w.notifyEmail == "" {
		return
	}
	titles := make([]string, len(unlocked))
	for i, a := range unlocked {
		titles[i] = a.Title
	}
	subject := fmt.Sprintf("You unlocked %d new achievement(s)", len(unlocked))
	body := "New achievements: " + strings.Join(titles, ", ")
	if err := w.mailer.Send(w.notifyEmail, subject, body); err != nil {
		log.Error().Err(err).Msg("achievement_worker: notification email failed")
	}
}
