package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straatbeeld/werkorder-api/internal/dto"
	"github.com/straatbeeld/werkorder-api/internal/models"
	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
)

type workOrderStoreStub struct {
	orders         []models.WorkOrder
	getOrder       *models.WorkOrder
	byStatus       []models.StatusCount
	byMunicipality []models.MunicipalityCount

	listErr   error
	getErr    error
	createErr error
	updateErr error

	created       *models.WorkOrder
	updateChanges map[string]interface{}
	updateID      int64
}

func (s *workOrderStoreStub) List(ctx context.Context) ([]models.WorkOrder, error) {
	return s.orders, s.listErr
}

func (s *workOrderStoreStub) GetByID(ctx context.Context, id int64) (*models.WorkOrder, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getOrder, nil
}

func (s *workOrderStoreStub) Create(ctx context.Context, order *models.WorkOrder) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.ID = 1
	order.OrderNumber = "AB12CD34"
	s.created = order
	return nil
}

func (s *workOrderStoreStub) Update(ctx context.Context, id int64, changes map[string]interface{}) error {
	s.updateID = id
	s.updateChanges = changes
	return s.updateErr
}

func (s *workOrderStoreStub) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	return s.byStatus, nil
}

func (s *workOrderStoreStub) CountByMunicipality(ctx context.Context) ([]models.MunicipalityCount, error) {
	return s.byMunicipality, nil
}

type workOrderLogStoreStub struct {
	entries   []models.WorkOrderLog
	created   *models.WorkOrderLog
	createErr error
	listErr   error
}

func (s *workOrderLogStoreStub) Create(ctx context.Context, log *models.WorkOrderLog) error {
	if s.createErr != nil {
		return s.createErr
	}
	log.ID = int64(len(s.entries) + 1)
	s.created = log
	return nil
}

func (s *workOrderLogStoreStub) ListByWorkOrder(ctx context.Context, workOrderID int64) ([]models.WorkOrderLog, error) {
	return s.entries, s.listErr
}

func validCreateRequest() dto.CreateWorkOrderRequest {
	return dto.CreateWorkOrderRequest{
		RequestorName:         "J. de Vries",
		RequestorPhone:        "0612345678",
		RequestorEmail:        "j.devries@gemeente.nl",
		Municipality:          "Amsterdam",
		ExecutionContactName:  "P. Bakker",
		ExecutionContactPhone: "0687654321",
		ExecutionContactEmail: "p.bakker@aannemer.nl",
		ActionType:            "plaatsen",
		FurnitureType:         "abri",
		DesiredDate:           models.NewDate(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)),
		BillingCity:           "Amsterdam",
		BillingAddress:        "Amstel 1",
		BillingPostcode:       "1011 PN",
	}
}

func newTestService(repo *workOrderStoreStub, logs *workOrderLogStoreStub) *WorkOrderService {
	return NewWorkOrderService(repo, logs, nil, nil, nil)
}

func TestWorkOrderServiceCreate(t *testing.T) {
	repo := &workOrderStoreStub{}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	order, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "amsterdam", order.Municipality)
	assert.Equal(t, "AB12CD34", order.OrderNumber)
	assert.Equal(t, models.ActionPlace, order.ActionType)
}

func TestWorkOrderServiceCreateInvalidMunicipality(t *testing.T) {
	repo := &workOrderStoreStub{}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	req := validCreateRequest()
	req.Municipality = "parijs"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestWorkOrderServiceCreateInvalidActionType(t *testing.T) {
	svc := newTestService(&workOrderStoreStub{}, &workOrderLogStoreStub{})

	req := validCreateRequest()
	req.ActionType = "slopen"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestWorkOrderServiceCreateMissingRequired(t *testing.T) {
	svc := newTestService(&workOrderStoreStub{}, &workOrderLogStoreStub{})

	req := validCreateRequest()
	req.RequestorEmail = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestWorkOrderServiceGetNotFound(t *testing.T) {
	repo := &workOrderStoreStub{getErr: sql.ErrNoRows}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "work order not found", appErr.Message)
}

func TestWorkOrderServiceListStorageError(t *testing.T) {
	repo := &workOrderStoreStub{listErr: sql.ErrConnDone}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStorage.Code, appErrors.FromError(err).Code)
}

func TestWorkOrderServiceUpdateStatusChangeWritesLog(t *testing.T) {
	current := &models.WorkOrder{ID: 1, Status: models.StatusPending}
	repo := &workOrderStoreStub{getOrder: current}
	logs := &workOrderLogStoreStub{}
	svc := newTestService(repo, logs)

	status := "IN_PROGRESS"
	note := "uitvoering ingepland"
	_, err := svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{Status: &status, StatusNote: &note})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.updateID)
	assert.Equal(t, map[string]interface{}{"status": "IN_PROGRESS"}, repo.updateChanges)
	require.NotNil(t, logs.created)
	assert.Equal(t, "IN_PROGRESS", logs.created.Status)
	require.NotNil(t, logs.created.Note)
	assert.Equal(t, "uitvoering ingepland", *logs.created.Note)
}

func TestWorkOrderServiceUpdateSameStatusSkipsLog(t *testing.T) {
	current := &models.WorkOrder{ID: 1, Status: models.StatusPending}
	repo := &workOrderStoreStub{getOrder: current}
	logs := &workOrderLogStoreStub{}
	svc := newTestService(repo, logs)

	status := "PENDING"
	_, err := svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, logs.created)
}

func TestWorkOrderServiceUpdateOnlySuppliedFields(t *testing.T) {
	current := &models.WorkOrder{ID: 1, Status: models.StatusPending}
	repo := &workOrderStoreStub{getOrder: current}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	name := "M. Jansen"
	municipality := "Rotterdam"
	paving := true
	_, err := svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{
		RequestorName:       &name,
		Municipality:        &municipality,
		GroundRemovalPaving: &paving,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"requestor_name":        "M. Jansen",
		"municipality":          "rotterdam",
		"ground_removal_paving": true,
	}, repo.updateChanges)
}

func TestWorkOrderServiceUpdateInvalidStatus(t *testing.T) {
	repo := &workOrderStoreStub{getOrder: &models.WorkOrder{ID: 1}}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	status := "ARCHIVED"
	_, err := svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{Status: &status})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.updateChanges)
}

func TestWorkOrderServiceUpdateNotFound(t *testing.T) {
	repo := &workOrderStoreStub{getErr: sql.ErrNoRows}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	status := "COMPLETED"
	_, err := svc.Update(context.Background(), 99, dto.UpdateWorkOrderRequest{Status: &status})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestWorkOrderServiceLogsNotFound(t *testing.T) {
	repo := &workOrderStoreStub{getErr: sql.ErrNoRows}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	_, err := svc.Logs(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestWorkOrderServiceLogs(t *testing.T) {
	repo := &workOrderStoreStub{getOrder: &models.WorkOrder{ID: 1}}
	logs := &workOrderLogStoreStub{entries: []models.WorkOrderLog{
		{ID: 2, WorkOrderID: 1, Status: "COMPLETED"},
		{ID: 1, WorkOrderID: 1, Status: "IN_PROGRESS"},
	}}
	svc := newTestService(repo, logs)

	entries, err := svc.Logs(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "COMPLETED", entries[0].Status)
}

func TestWorkOrderServiceStats(t *testing.T) {
	repo := &workOrderStoreStub{
		byStatus: []models.StatusCount{
			{Status: models.StatusPending, Count: 5},
			{Status: models.StatusCompleted, Count: 3},
		},
		byMunicipality: []models.MunicipalityCount{
			{Municipality: "amsterdam", Count: 6},
			{Municipality: "breda", Count: 2},
		},
	}
	svc := newTestService(repo, &workOrderLogStoreStub{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Total)
	assert.Len(t, stats.ByStatus, 2)
	assert.Len(t, stats.ByMunicipality, 2)
}
