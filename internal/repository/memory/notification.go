package memory

import (
	"context"
	"maps"
	"sort"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type notificationRepository struct {
	*state
}

func (r *notificationRepository) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextNoteID++
	n.ID = r.nextNoteID
	n.CreatedOn = time.Now().Format("2006-01-02")
	stored := *n
	stored.Attributes = maps.Clone(n.Attributes)
	r.notes[n.ID] = stored
	return nil
}

func (r *notificationRepository) List(_ context.Context, accountID string, limit, offset int32) ([]domain.Notification, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var notes []domain.Notification
	for _, n := range r.notes {
		if n.AccountID == accountID {
			n.Attributes = maps.Clone(n.Attributes)
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedOn == notes[j].CreatedOn {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].CreatedOn > notes[j].CreatedOn
	})
	return page(notes, limit, offset), int32(len(notes)), nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, id int32, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok || n.AccountID != accountID {
		return repository.ErrNotFound
	}
	n.IsRead = true
	r.notes[id] = n
	return nil
}
