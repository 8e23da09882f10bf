package postgres

import (
	"context"
	"database/sql"
	"errors"

	domuser "example.com/provisions-store/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, u.Name, u.Email, u.PasswordHash, u.Role).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domuser.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, role FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, role FROM users WHERE email = $1`, email)
}

func (r *UserRepository) List(ctx context.Context, filter domuser.ListFilter) ([]*domuser.User, error) {
	query := `SELECT id, name, email, password_hash, role FROM users`
	var args []any
	if filter.Role != nil {
		query += ` WHERE role = $1`
		args = append(args, *filter.Role)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domuser.User
	for rows.Next() {
		var u domuser.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE users SET name = $1, email = $2, password_hash = $3, role = $4 WHERE id = $5
    `, u.Name, u.Email, u.PasswordHash, u.Role, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domuser.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domuser.User, error) {
	var u domuser.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
