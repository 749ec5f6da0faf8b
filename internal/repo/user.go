package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/domain/models"
)

type UserRepo struct {
	storage *sqlx.DB
}

func NewUserRepo(storage *sqlx.DB) *UserRepo {
	return &UserRepo{storage: storage}
}

func (r *UserRepo) CreateParticipant(name, email, passwordHash string) (*models.User, error) {
	const op = "repo.user.CreateParticipant"

	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'user')
		RETURNING user_id, name, email, password_hash, role, team_id, is_leader
	`

	var user models.User
	err := r.storage.Get(&user, query, name, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	const op = "repo.user.GetByEmail"

	query := `
		SELECT user_id, name, email, password_hash, role, team_id, is_leader
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.storage.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByID(userID int) (*models.User, error) {
	const op = "repo.user.GetByID"

	query := `
		SELECT user_id, name, email, password_hash, role, team_id, is_leader
		FROM users
		WHERE user_id = $1
	`

	var user models.User
	err := r.storage.Get(&user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
