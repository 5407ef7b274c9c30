package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nirmalvora/padosee-server/internal/domain"
)

const requestColumns = `id, sender_id, receiver_id, status, created_at, updated_at`

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	query := `
		INSERT INTO requests (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + requestColumns

	row := r.pool.QueryRow(ctx, query, req.SenderID, req.ReceiverID, req.Status)
	created, err := scanRequest(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case codeUniqueViolation:
				return nil, domain.ErrDuplicateRequest
			case codeForeignKeyViolation, codeInvalidTextRep:
				return nil, domain.ErrUnknownParticipant
			}
		}
		return nil, err
	}
	return created, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]*domain.Request, error) {
	return r.query(ctx, `SELECT `+requestColumns+` FROM requests ORDER BY created_at DESC, id DESC`)
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if isInvalidID(err) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestRepository) ListBySender(ctx context.Context, senderID string) ([]*domain.Request, error) {
	reqs, err := r.query(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE sender_id = $1 ORDER BY created_at DESC, id DESC`,
		senderID)
	if isInvalidID(err) {
		return nil, nil
	}
	return reqs, err
}

func (r *RequestRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*domain.Request, error) {
	reqs, err := r.query(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE receiver_id = $1 ORDER BY created_at DESC, id DESC`,
		receiverID)
	if isInvalidID(err) {
		return nil, nil
	}
	return reqs, err
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE requests
		SET    status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+requestColumns,
		id, status)

	req, err := scanRequest(row)
	if err != nil {
		if isInvalidID(err) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrRequestNotFound
		}
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var reqs []*domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return reqs, nil
}

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var req domain.Request
	err := row.Scan(
		&req.ID,
		&req.SenderID,
		&req.ReceiverID,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}
	return &req, nil
}
