package sqlite

import (
	"context"
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
)

type rolesRepo struct {
	q querier
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM roles
		WHERE name = ?`, name)

	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM roles
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO roles (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		role.ID, role.Name, now, now)
	return mapConflict(err)
}

func (r *rolesRepo) AddToRole(ctx context.Context, userID, roleID string) error {
	// INSERT OR IGNORE keeps re-assignment idempotent.
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO user_roles (user_id, role_id, created_at)
		VALUES (?, ?, ?)`,
		userID, roleID, time.Now().UTC())
	return err
}

func (r *rolesRepo) RemoveFromRole(ctx context.Context, userID, roleID string) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM user_roles
		WHERE user_id = ? AND role_id = ?`, userID, roleID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) RolesForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = ?
		ORDER BY r.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
