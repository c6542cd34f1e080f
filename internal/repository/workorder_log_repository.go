package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/straatbeeld/werkorder-api/internal/models"
)

// WorkOrderLogRepository persists the append-only status history.
// Entries are never updated or deleted; the schema cascades them away
// with their parent order.
type WorkOrderLogRepository struct {
	db *sqlx.DB
}

// NewWorkOrderLogRepository constructs the repository.
func NewWorkOrderLogRepository(db *sqlx.DB) *WorkOrderLogRepository {
	return &WorkOrderLogRepository{db: db}
}

// Create appends one history row.
func (r *WorkOrderLogRepository) Create(ctx context.Context, log *models.WorkOrderLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO work_order_logs (work_order_id, status, note, created_at)
	VALUES (:work_order_id, :status, :note, :created_at)
	RETURNING id`
	rows, err := r.db.NamedQueryContext(ctx, query, log)
	if err != nil {
		return fmt.Errorf("create work order log: %w", err)
	}
	if rows.Next() {
		if err := rows.Scan(&log.ID); err != nil {
			rows.Close()
			return fmt.Errorf("scan work order log id: %w", err)
		}
	}
	return rows.Close()
}

// ListByWorkOrder returns the history for one order, newest first.
func (r *WorkOrderLogRepository) ListByWorkOrder(ctx context.Context, workOrderID int64) ([]models.WorkOrderLog, error) {
	const query = `SELECT id, work_order_id, status, note, created_at
	FROM work_order_logs WHERE work_order_id = $1 ORDER BY created_at DESC, id DESC`
	logs := []models.WorkOrderLog{}
	if err := r.db.SelectContext(ctx, &logs, query, workOrderID); err != nil {
		return nil, fmt.Errorf("list work order logs: %w", err)
	}
	return logs, nil
}
