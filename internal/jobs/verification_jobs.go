package jobs

import (
	"context"
	"fmt"
	"strconv"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/service"
)

// RemindPendingVerifications tells every admin how many profiles are waiting
// for review. Nothing is sent when the queue is empty.
func (jr *JobRunner) RemindPendingVerifications() {
	jr.runWithRecovery("RemindPendingVerifications", jr.remindPendingVerifications)
}

func (jr *JobRunner) remindPendingVerifications(ctx context.Context) error {
	pending, err := jr.profileRepo.ListByStatus(ctx, domain.VerificationPending)
	if err != nil {
		return fmt.Errorf("list pending profiles: %w", err)
	}
	if len(pending) == 0 {
		logger.Info("No pending verifications")
		return nil
	}

	admins, err := jr.roleRepo.ListLatestByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}
	if len(admins) == 0 {
		logger.Warn("Pending verifications but no admin to notify", "pending", len(pending))
		return nil
	}

	message := fmt.Sprintf("%d account(s) are waiting for verification review.", len(pending))
	for _, adminID := range admins {
		jr.notifier.Notify(ctx, adminID, "Pending verifications", message, map[string]string{
			service.AttrType:   service.NotePendingReminder,
			service.AttrStatus: strconv.Itoa(len(pending)),
		})
	}

	logger.Info("Pending verification reminders sent", "pending", len(pending), "admins", len(admins))
	return nil
}
