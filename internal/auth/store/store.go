package store

import (
	"context"
	"errors"

	"github.com/permitd/permitd/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Roles() Roles
	Permissions() Permissions
	Products() Products

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scoped to a single database transaction.
type Tx interface {
	Users() Users
	Roles() Roles
	Permissions() Permissions
	Products() Products

	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id. Soft-deleted users are not returned.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during sign-in and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// SoftDeleteUser flips is_deleted and bumps updated_at. Rows are never
	// physically removed.
	SoftDeleteUser(ctx context.Context, userID string) error
}

type Roles interface {
	// GetRoleByName fetches a role by its unique name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles ordered by name.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role. Duplicate names map to ErrAlreadyExists.
	CreateRole(ctx context.Context, r domain.Role) error

	// AddToRole assigns a role to a user. Assigning an already-held role
	// is a no-op.
	AddToRole(ctx context.Context, userID, roleID string) error

	// RemoveFromRole removes a role from a user. ErrNotFound when the user
	// did not hold the role.
	RemoveFromRole(ctx context.Context, userID, roleID string) error

	// RolesForUser returns the names of all roles the user currently holds.
	// This is the live lookup the decision engine relies on.
	RolesForUser(ctx context.Context, userID string) ([]string, error)
}

type Permissions interface {
	// HasExact reports whether any active permission row grants one of the
	// caller's roles the exact (case-insensitive) path and method.
	HasExact(ctx context.Context, roles []string, path, method string) (bool, error)

	// HasWildcard reports whether any active row whose endpoint ends in the
	// wildcard suffix matches the path by case-insensitive prefix.
	HasWildcard(ctx context.Context, roles []string, path, method string) (bool, error)

	// CreatePermission inserts a row. A duplicate (role, endpoint, method)
	// triple maps to ErrAlreadyExists via the unique constraint.
	CreatePermission(ctx context.Context, p domain.Permission) error

	// DeletePermission removes a row by id. ErrNotFound when absent.
	DeletePermission(ctx context.Context, id string) error

	// ListByRole returns all non-deleted rows for one role.
	ListByRole(ctx context.Context, roleName string) ([]domain.Permission, error)

	// ListEndpointsForRoles returns the distinct endpoint/method pairs
	// reachable by any of the given roles (the accessible_apis projection).
	ListEndpointsForRoles(ctx context.Context, roles []string) ([]domain.EndpointMethod, error)
}

type Products interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
