package memory

import (
	"context"
	"sort"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/repository"
)

type roleRepository struct {
	*state
}

func (r *roleRepository) Append(_ context.Context, a *domain.RoleAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextRoleID++
	a.ID = r.nextRoleID
	a.AssignedAt = time.Now().UTC()
	r.roles = append(r.roles, *a)
	return nil
}

func (r *roleRepository) Latest(_ context.Context, accountID string) (*domain.RoleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	latest, ok := r.latest()[accountID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &latest, nil
}

func (r *roleRepository) ListLatestByRole(_ context.Context, role domain.Role) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, a := range r.latest() {
		if a.Role == role {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *roleRepository) CountLatestByRole(_ context.Context) (map[domain.Role]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.Role]int)
	for _, a := range r.latest() {
		counts[a.Role]++
	}
	return counts, nil
}

// latest must be called with the lock held. The highest id wins;
// AssignedAt plays no part in the ordering.
func (r *roleRepository) latest() map[string]domain.RoleAssignment {
	out := make(map[string]domain.RoleAssignment)
	for _, a := range r.roles {
		if cur, ok := out[a.AccountID]; !ok || a.ID > cur.ID {
			out[a.AccountID] = a
		}
	}
	return out
}
