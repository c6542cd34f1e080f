package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straatbeeld/werkorder-api/internal/models"
)

func TestWorkOrderLogRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newWorkOrderMock(t)
	defer cleanup()
	repo := NewWorkOrderLogRepository(db)

	mock.ExpectQuery(`INSERT INTO work_order_logs`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	note := "Geplande uitvoering bevestigd"
	entry := &models.WorkOrderLog{WorkOrderID: 1, Status: "IN_PROGRESS", Note: &note}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, int64(3), entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkOrderLogRepositoryListByWorkOrder(t *testing.T) {
	db, mock, cleanup := newWorkOrderMock(t)
	defer cleanup()
	repo := NewWorkOrderLogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "work_order_id", "status", "note", "created_at"}).
		AddRow(int64(2), int64(1), "COMPLETED", nil, time.Now()).
		AddRow(int64(1), int64(1), "IN_PROGRESS", "gestart", time.Now().Add(-time.Hour))
	mock.ExpectQuery(`SELECT id, work_order_id, status, note, created_at\s+FROM work_order_logs WHERE work_order_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	logs, err := repo.ListByWorkOrder(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "COMPLETED", logs[0].Status)
	assert.Nil(t, logs[0].Note)
	require.NotNil(t, logs[1].Note)
	assert.Equal(t, "gestart", *logs[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}
