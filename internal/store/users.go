package store

import (
	"context"

	"hoteldesk/m/domain"
)

const userColumns = `id, username, email, password, role, created_at`

func CreateUser(ctx context.Context, q Queryer, u *domain.User) error {
	id, err := insertID(ctx, q, `INSERT INTO users (username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.Password, u.Role, u.CreatedAt)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func GetUser(ctx context.Context, q Queryer, id int64) (domain.User, error) {
	var u domain.User
	err := get(ctx, q, &u, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return u, err
}

func GetUserByEmail(ctx context.Context, q Queryer, email string) (domain.User, error) {
	var u domain.User
	err := get(ctx, q, &u, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return u, err
}

func UpdatePassword(ctx context.Context, q Queryer, id int64, hash string) error {
	return execOne(ctx, q, `UPDATE users SET password = ? WHERE id = ?`, hash, id)
}
