package sqlite

import (
	"context"

	"github.com/contabr/accounts/internal/accounts/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, document, email, password_hash, created_at, updated_at`

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Document, &u.Email,
			&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	).Scan(
		&u.ID, &u.Name, &u.Document, &u.Email,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, document, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.Name, u.Document, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, document = ?, email = ?, updated_at = ? WHERE id = ?`,
		u.Name, u.Document, u.Email, u.UpdatedAt, u.ID,
	)
	return mapConstraint(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *usersRepo) DocumentInUse(ctx context.Context, document string, excludeID int64) (bool, error) {
	return r.inUse(ctx,
		`SELECT COUNT(1) FROM users WHERE document = ? AND id != ?`, document, excludeID)
}

func (r *usersRepo) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.inUse(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ? AND id != ?`, email, excludeID)
}

func (r *usersRepo) inUse(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
