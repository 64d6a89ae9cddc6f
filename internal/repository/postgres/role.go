package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// latestRoles selects the effective assignment per account. Order follows
// the insertion sequence; assigned_at comes from the writer's clock and is
// informational only.
const latestRoles = `SELECT DISTINCT ON (account_id) account_id, role
	FROM role_assignments
	ORDER BY account_id, id DESC`

func (r *roleRepository) Append(ctx context.Context, a *domain.RoleAssignment) error {
	query := `INSERT INTO role_assignments (account_id, role, assigned_by, assigned_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	a.AssignedAt = time.Now().UTC()
	logger.DatabaseCall("INSERT", "role_assignments", "accountID", a.AccountID, "role", a.Role)
	err := r.db.QueryRowContext(ctx, query, a.AccountID, a.Role, a.AssignedBy, a.AssignedAt).Scan(&a.ID)
	logger.DatabaseResult("INSERT", 1, err, "assignmentID", a.ID)
	return mapError(err)
}

func (r *roleRepository) Latest(ctx context.Context, accountID string) (*domain.RoleAssignment, error) {
	a := &domain.RoleAssignment{}
	query := `SELECT id, account_id, role, assigned_by, assigned_at FROM role_assignments
	          WHERE account_id = $1 ORDER BY id DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&a.ID, &a.AccountID, &a.Role, &a.AssignedBy, &a.AssignedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *roleRepository) ListLatestByRole(ctx context.Context, role domain.Role) ([]string, error) {
	query := `SELECT account_id FROM (` + latestRoles + `) latest WHERE role = $1 ORDER BY account_id`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err)
		}
		ids = append(ids, id)
	}
	return ids, mapError(rows.Err())
}

func (r *roleRepository) CountLatestByRole(ctx context.Context) (map[domain.Role]int, error) {
	query := `SELECT role, COUNT(*) FROM (` + latestRoles + `) latest GROUP BY role`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	counts := make(map[domain.Role]int)
	for rows.Next() {
		var role domain.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, mapError(err)
		}
		counts[role] = n
	}
	return counts, mapError(rows.Err())
}
