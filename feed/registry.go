package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gocraft/dbr/v2"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Registry stores named feed sources. Names and URLs are both unique.
type Registry struct {
	db *dbr.Connection
}

func NewRegistry(db *dbr.Connection) (*Registry, error) {
	sess := db.NewSession(nil)
	if _, err := sess.Exec(initTable); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &Registry{db: db}, nil
}

func (r *Registry) Add(ctx context.Context, name, url string) error {
	name, url = strings.TrimSpace(name), strings.TrimSpace(url)
	if name == "" || url == "" {
		return ErrInvalidInput
	}

	tx, err := r.db.NewSession(nil).Begin()
	if err != nil {
		return err
	}
	defer tx.RollbackUnlessCommitted()

	_, err = tx.InsertInto(tableName).
		Columns("name", "url").
		Values(name, url).ExecContext(ctx)
	if err != nil {
		var serr *sqlite.Error
		if errors.As(err, &serr) && isUniqueViolation(serr.Code()) {
			return ErrDuplicateSource
		}
		return err
	}

	return tx.Commit()
}

func (r *Registry) Remove(ctx context.Context, name string) error {
	tx, err := r.db.NewSession(nil).Begin()
	if err != nil {
		return err
	}
	defer tx.RollbackUnlessCommitted()

	res, err := tx.DeleteFrom(tableName).Where("name = ?", strings.TrimSpace(name)).ExecContext(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// List returns the registered names in insertion order.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	var names []string
	if _, err := r.db.NewSession(nil).Select("name").From(tableName).
		OrderBy("id").LoadContext(ctx, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Registry) Sources(ctx context.Context) ([]*FeedSource, error) {
	var sources []*FeedSource
	if _, err := r.db.NewSession(nil).Select("id", "name", "url").From(tableName).
		OrderBy("id").LoadContext(ctx, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *Registry) ResolveURL(ctx context.Context, name string) (string, error) {
	var url string
	err := r.db.NewSession(nil).Select("url").From(tableName).
		Where("name = ?", strings.TrimSpace(name)).LoadOneContext(ctx, &url)
	if errors.Is(err, dbr.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

func isUniqueViolation(code int) bool {
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT
}
