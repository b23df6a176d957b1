package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/spal7319/movie-ticket-booking/internal/model"
	"github.com/spal7319/movie-ticket-booking/internal/utils"
)

// UserRepo persists accounts and wallet balances in the `users` table.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo binds a UserRepo to the given database handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new account with the signup wallet balance and returns
// its ID.  The password is bcrypt-hashed with the given cost.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, balance) VALUES (?,?,?,?)",
		username, hash, role, model.SignupBalance)
	if err != nil {
		// MySQL 1062 = duplicate key on the unique username index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches an account by its username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,balance,created_at,updated_at FROM users WHERE username=? LIMIT 1",
		strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches an account by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,balance,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Balance returns the current wallet balance for a user.
func (r *UserRepo) Balance(ctx context.Context, id uint64) (int64, error) {
	var bal int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT balance FROM users WHERE id=? LIMIT 1", id).Scan(&bal)
	return bal, err
}

// DebitTx subtracts amount from a user's wallet inside the given
// transaction.  The conditional update keeps the balance non-negative
// without a read-modify-write race; zero rows affected means the funds
// were not there and ErrInsufficientFunds is returned.
func (r *UserRepo) DebitTx(ctx context.Context, tx *sql.Tx, userID uint64, amount int64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE users SET balance = balance - ? WHERE id = ? AND balance >= ?",
		amount, userID, amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}
	return nil
}
