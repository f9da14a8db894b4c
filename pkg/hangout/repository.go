package hangout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrRequestNotFound = errors.New("hangout request not found")

type Repository interface {
	StoreRequest(ctx context.Context, request Request) error
	GetRequest(ctx context.Context, requestId string) (Request, error)
	GetRequestsForUser(ctx context.Context, userId int) ([]Request, error)
	GetPendingRequestsForOwner(ctx context.Context, ownerEmail string) ([]Request, error)
	UpdateStatus(ctx context.Context, requestId string, status Status) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreRequest(ctx context.Context, request Request) error {
	query := `INSERT INTO hangout_request (
                            id,
                            user_id,
                            persona_id,
                            hangout_type,
                            proposed_time,
                            duration_hours,
                            status,
                            created_at
						) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		request.Id,
		request.UserId,
		request.PersonaId,
		string(request.Type),
		request.ProposedTime.UTC().Format(time.RFC3339),
		request.DurationHours,
		string(request.Status),
		request.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Errorf("failed to store hangout request: %v", err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetRequest(ctx context.Context, requestId string) (Request, error) {
	query := `SELECT id, user_id, persona_id, hangout_type, proposed_time, duration_hours, status, created_at
				FROM hangout_request WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, requestId)
	request, err := scanRequest(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Request{}, ErrRequestNotFound
	} else if err != nil {
		log.Errorf("failed to get hangout request %s: %v", requestId, err)
		return Request{}, err
	}
	return request, nil
}

func (r *RepositoryImpl) GetRequestsForUser(ctx context.Context, userId int) ([]Request, error) {
	query := `SELECT id, user_id, persona_id, hangout_type, proposed_time, duration_hours, status, created_at
				FROM hangout_request WHERE user_id = ? ORDER BY proposed_time`
	return r.queryRequests(ctx, query, userId)
}

// GetPendingRequestsForOwner lists the requests awaiting a decision by the
// owner of the targeted personas.
func (r *RepositoryImpl) GetPendingRequestsForOwner(ctx context.Context, ownerEmail string) ([]Request, error) {
	query := `SELECT hr.id, hr.user_id, hr.persona_id, hr.hangout_type, hr.proposed_time, hr.duration_hours, hr.status, hr.created_at
				FROM hangout_request hr
				JOIN persona p ON p.id = hr.persona_id
				WHERE p.owner_email = ? AND hr.status = ? ORDER BY hr.proposed_time`
	return r.queryRequests(ctx, query, ownerEmail, string(StatusPending))
}

func (r *RepositoryImpl) queryRequests(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Errorf("failed to query hangout requests: %v", err)
		return nil, err
	}
	defer rows.Close()

	requests := make([]Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *RepositoryImpl) UpdateStatus(ctx context.Context, requestId string, status Status) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE hangout_request SET status = ? WHERE id = ?", string(status), requestId)
	if err != nil {
		log.Errorf("failed to update hangout request %s status: %v", requestId, err)
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanRequest(scan func(dest ...any) error) (Request, error) {
	var request Request
	var hangoutType, status, proposedTime, createdAt string
	err := scan(
		&request.Id,
		&request.UserId,
		&request.PersonaId,
		&hangoutType,
		&proposedTime,
		&request.DurationHours,
		&status,
		&createdAt,
	)
	if err != nil {
		return Request{}, err
	}
	request.Type = HangoutType(hangoutType)
	request.Status = Status(status)
	request.ProposedTime, err = time.Parse(time.RFC3339, proposedTime)
	if err != nil {
		return Request{}, err
	}
	request.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Request{}, err
	}
	return request, nil
}
