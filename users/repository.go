// Package users хранит пользователей бота и их последние выбранные группы в sqlite.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	telegram_login TEXT NOT NULL DEFAULT '',
	recent_groups TEXT NOT NULL DEFAULT ''
)`

const selectUserQuery = "SELECT id, telegram_login, recent_groups FROM users WHERE id = ?"
const selectUsersQuery = "SELECT id, telegram_login, recent_groups FROM users ORDER BY id"
const selectIDsQuery = "SELECT id FROM users ORDER BY id"
const upsertUserQuery = `INSERT INTO users (id, telegram_login, recent_groups) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET telegram_login = excluded.telegram_login, recent_groups = excluded.recent_groups`

// Разделитель групп в recent_groups
const groupSeparator = ","

// ErrNotFound пользователя нет в базе
var ErrNotFound = errors.New("user not found")

// User пользователь бота
type User struct {
	ID     int64  `db:"id"`
	Login  string `db:"telegram_login"`
	Recent string `db:"recent_groups"`
}

// RecentGroups последние группы, самая свежая в конце
func (u User) RecentGroups() []string {
	if u.Recent == "" {
		return nil
	}
	return strings.Split(u.Recent, groupSeparator)
}

type Repository struct {
	db     *sqlx.DB
	recent int
}

// Open открыть (или создать) базу; recent - сколько последних групп помнить
func Open(ctx context.Context, path string, recent int) (*Repository, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("users db: %w", err)
	}
	// sqlite не любит параллельную запись
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("users schema: %w", err)
	}
	return &Repository{db: db, recent: recent}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// AddOrUpdate запомнить пользователя; если group не пустая, она становится самой свежей
func (r *Repository) AddOrUpdate(ctx context.Context, id int64, login string, group string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var u User
	err = tx.GetContext(ctx, &u, selectUserQuery, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	recent := PushRecent(u.RecentGroups(), group, r.recent)
	if _, err := tx.ExecContext(ctx, upsertUserQuery, id, login, strings.Join(recent, groupSeparator)); err != nil {
		return err
	}
	return tx.Commit()
}

// Get пользователь по id
func (r *Repository) Get(ctx context.Context, id int64) (User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, selectUserQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

// All все пользователи по порядку id
func (r *Repository) All(ctx context.Context) ([]User, error) {
	var ret []User
	if err := r.db.SelectContext(ctx, &ret, selectUsersQuery); err != nil {
		return nil, err
	}
	return ret, nil
}

// AllIDs id всех пользователей для рассылки
func (r *Repository) AllIDs(ctx context.Context) ([]int64, error) {
	var ret []int64
	if err := r.db.SelectContext(ctx, &ret, selectIDsQuery); err != nil {
		return nil, err
	}
	return ret, nil
}
