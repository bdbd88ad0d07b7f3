package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalculationRecord is one saved calculation; input and result are the
// JSON payloads exactly as the engine consumed and produced them.
type CalculationRecord struct {
	ID        int             `json:"id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int, error)
	SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error)
	ListCalculations(ctx context.Context, userID, limit int) ([]CalculationRecord, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, ''), created_at FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.CreatedAt)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1 RETURNING id"
	err := r.db.QueryRowContext(ctx, query, id, login, description).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO calculations (user_id, tool, input, result) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, tool, []byte(input), []byte(result)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListCalculations(ctx context.Context, userID, limit int) ([]CalculationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := "SELECT id, tool, input, result, created_at FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		if err := rows.Scan(&rec.ID, &rec.Tool, &rec.Input, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
