package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
)

type permissionsRepo struct {
	q querier
}

func (r *permissionsRepo) HasExact(ctx context.Context, roles []string, path, method string) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}
	query := `
		SELECT EXISTS(
			SELECT 1 FROM role_api_permissions
			WHERE is_active = 1 AND is_deleted = 0
			  AND LOWER(endpoint) = LOWER(?)
			  AND LOWER(http_method) = LOWER(?)
			  AND role_name IN (` + inPlaceholders(len(roles)) + `)
		)`
	args := append([]any{path, method}, toAnySlice(roles)...)

	var found bool
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *permissionsRepo) HasWildcard(ctx context.Context, roles []string, path, method string) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}
	// instr(...) = 1 is a prefix test; it avoids LIKE metacharacter
	// escaping for endpoints that contain % or _.
	n := len(domain.WildcardSuffix)
	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM role_api_permissions
			WHERE is_active = 1 AND is_deleted = 0
			  AND LOWER(http_method) = LOWER(?)
			  AND substr(endpoint, -%d) = '%s'
			  AND instr(LOWER(?), LOWER(substr(endpoint, 1, length(endpoint) - %d))) = 1
			  AND role_name IN (%s)
		)`, n, domain.WildcardSuffix, n, inPlaceholders(len(roles)))
	args := append([]any{method, path}, toAnySlice(roles)...)

	var found bool
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO role_api_permissions
			(id, role_name, endpoint, http_method, description, is_active, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, 0, ?, ?)`,
		p.ID, p.RoleName, p.Endpoint, p.HTTPMethod, p.Description, now, now)
	return mapConflict(err)
}

func (r *permissionsRepo) DeletePermission(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM role_api_permissions WHERE id = ?`, id)
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

func (r *permissionsRepo) ListByRole(ctx context.Context, roleName string) ([]domain.Permission, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, role_name, endpoint, http_method, description,
			is_active, is_deleted, created_at, updated_at
		FROM role_api_permissions
		WHERE role_name = ? AND is_deleted = 0
		ORDER BY endpoint, http_method`, roleName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []domain.Permission
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.RoleName, &p.Endpoint, &p.HTTPMethod, &p.Description,
			&p.IsActive, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func (r *permissionsRepo) ListEndpointsForRoles(ctx context.Context, roles []string) ([]domain.EndpointMethod, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT endpoint, http_method
		FROM role_api_permissions
		WHERE is_active = 1 AND is_deleted = 0
		  AND role_name IN (` + inPlaceholders(len(roles)) + `)
		ORDER BY endpoint, http_method`

	rows, err := r.q.QueryContext(ctx, query, toAnySlice(roles)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EndpointMethod
	for rows.Next() {
		var em domain.EndpointMethod
		if err := rows.Scan(&em.Endpoint, &em.HTTPMethod); err != nil {
			return nil, err
		}
		out = append(out, em)
	}
	return out, rows.Err()
}
