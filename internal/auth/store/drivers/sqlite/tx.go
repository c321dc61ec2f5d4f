package sqlite

import (
	"database/sql"

	"github.com/permitd/permitd/internal/auth/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Users() store.Users             { return &usersRepo{q: t.tx} }
func (t *txStore) Roles() store.Roles             { return &rolesRepo{q: t.tx} }
func (t *txStore) Permissions() store.Permissions { return &permissionsRepo{q: t.tx} }
func (t *txStore) Products() store.Products       { return &productsRepo{q: t.tx} }
