package service

import (
	"context"
	"math"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

// Notification attribute keys
const (
	AttrType          = "type"
	AttrApplicationID = "application_id"
	AttrJobID         = "job_id"
	AttrStatus        = "status"
	AttrReason        = "reason"
)

// Notification types
const (
	NoteApplicationReceived = "APPLICATION_RECEIVED"
	NoteApplicationDecided  = "APPLICATION_DECIDED"
	NoteVerificationChanged = "VERIFICATION_CHANGED"
	NoteRoleChanged         = "ROLE_CHANGED"
	NotePendingReminder     = "PENDING_VERIFICATIONS"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Notify(ctx context.Context, accountID, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		AccountID:  accountID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.WarnContext(ctx, "failed to create notification", "accountID", accountID, "title", title, "error", err)
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, accountID string, page, pageSize int32) ([]domain.Notification, int32, error) {
	limit, offset := pageBounds(page, pageSize)
	notes, total, err := s.noteRepo.List(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, storeError(err, "failed to list notifications")
	}
	return notes, total, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, accountID string, notificationID int32) error {
	if err := s.noteRepo.MarkAsRead(ctx, notificationID, accountID); err != nil {
		return storeError(err, "failed to mark notification as read")
	}
	return nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageBounds converts a 1-based page into limit and offset. Offsets past
// the int32 range are clamped, which yields an empty page.
func pageBounds(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := int64(page-1) * int64(pageSize)
	if offset > math.MaxInt32 {
		offset = math.MaxInt32
	}
	return pageSize, int32(offset)
}
