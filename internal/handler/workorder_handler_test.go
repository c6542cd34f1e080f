package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straatbeeld/werkorder-api/internal/dto"
	"github.com/straatbeeld/werkorder-api/internal/models"
	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
)

type workOrderServiceMock struct {
	listResp  []models.WorkOrder
	listErr   error
	getResp   *models.WorkOrder
	getErr    error
	createErr error
	updateErr error
	logsResp  []models.WorkOrderLog
	logsErr   error
	statsResp *models.WorkOrderStats
	statsErr  error

	createReq    dto.CreateWorkOrderRequest
	updateReq    dto.UpdateWorkOrderRequest
	updateID     int64
	createCalled bool
	updateCalled bool
}

func (m *workOrderServiceMock) List(ctx context.Context) ([]models.WorkOrder, error) {
	return m.listResp, m.listErr
}

func (m *workOrderServiceMock) Get(ctx context.Context, id int64) (*models.WorkOrder, error) {
	return m.getResp, m.getErr
}

func (m *workOrderServiceMock) Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*models.WorkOrder, error) {
	m.createCalled = true
	m.createReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.WorkOrder{ID: 1, OrderNumber: "AB12CD34", Status: models.StatusPending}, nil
}

func (m *workOrderServiceMock) Update(ctx context.Context, id int64, req dto.UpdateWorkOrderRequest) (*models.WorkOrder, error) {
	m.updateCalled = true
	m.updateID = id
	m.updateReq = req
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &models.WorkOrder{ID: id, Status: models.StatusInProgress}, nil
}

func (m *workOrderServiceMock) Logs(ctx context.Context, id int64) ([]models.WorkOrderLog, error) {
	return m.logsResp, m.logsErr
}

func (m *workOrderServiceMock) Stats(ctx context.Context) (*models.WorkOrderStats, error) {
	return m.statsResp, m.statsErr
}

type exportServiceMock struct {
	csvResp []byte
	csvErr  error
	pdfResp []byte
	pdfName string
	pdfErr  error
}

func (m *exportServiceMock) WorkOrdersCSV(ctx context.Context) ([]byte, error) {
	return m.csvResp, m.csvErr
}

func (m *exportServiceMock) WorkOrderPDF(ctx context.Context, id int64) ([]byte, string, error) {
	return m.pdfResp, m.pdfName, m.pdfErr
}

func testContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestWorkOrderHandlerList(t *testing.T) {
	mockSvc := &workOrderServiceMock{listResp: []models.WorkOrder{{ID: 1, OrderNumber: "AB12CD34"}}}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/requests", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "AB12CD34", orders[0].OrderNumber)
}

func TestWorkOrderHandlerListEmpty(t *testing.T) {
	mockSvc := &workOrderServiceMock{listResp: []models.WorkOrder{}}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/requests", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestWorkOrderHandlerCreate(t *testing.T) {
	mockSvc := &workOrderServiceMock{}
	h := NewWorkOrderHandler(mockSvc, nil)

	payload, _ := json.Marshal(map[string]interface{}{
		"requestorName":         "J. de Vries",
		"requestorPhone":        "0612345678",
		"requestorEmail":        "j.devries@gemeente.nl",
		"municipality":          "amsterdam",
		"executionContactName":  "P. Bakker",
		"executionContactPhone": "0687654321",
		"executionContactEmail": "p.bakker@aannemer.nl",
		"actionType":            "plaatsen",
		"furnitureType":         "abri",
		"desiredDate":           "2026-06-01",
		"billingCity":           "Amsterdam",
		"billingAddress":        "Amstel 1",
		"billingPostcode":       "1011 PN",
	})
	c, w := testContext(t, http.MethodPost, "/api/requests", payload)
	h.Create(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.createCalled)
	assert.Equal(t, "amsterdam", mockSvc.createReq.Municipality)
	assert.Equal(t, "2026-06-01", mockSvc.createReq.DesiredDate.Format("2006-01-02"))

	var order models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "AB12CD34", order.OrderNumber)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestWorkOrderHandlerCreateMalformedBody(t *testing.T) {
	mockSvc := &workOrderServiceMock{}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodPost, "/api/requests", []byte(`{"requestorName":`))
	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCalled)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrValidation.Code, envelope["code"])
	assert.NotEmpty(t, envelope["message"])
}

func TestWorkOrderHandlerCreateValidationError(t *testing.T) {
	mockSvc := &workOrderServiceMock{
		createErr: appErrors.Clone(appErrors.ErrValidation, "invalid work order payload"),
	}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodPost, "/api/requests", []byte(`{}`))
	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, mockSvc.createCalled)
}

func TestWorkOrderHandlerGet(t *testing.T) {
	mockSvc := &workOrderServiceMock{getResp: &models.WorkOrder{ID: 5, OrderNumber: "ZZ99XX11"}}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	var order models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, int64(5), order.ID)
}

func TestWorkOrderHandlerGetNotFound(t *testing.T) {
	mockSvc := &workOrderServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "work order not found")}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrNotFound.Code, envelope["code"])
	assert.Equal(t, "work order not found", envelope["message"])
}

func TestWorkOrderHandlerGetNonNumericID(t *testing.T) {
	mockSvc := &workOrderServiceMock{}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkOrderHandlerUpdate(t *testing.T) {
	mockSvc := &workOrderServiceMock{}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodPatch, "/api/work-orders/1", []byte(`{"status":"IN_PROGRESS","statusNote":"gestart"}`))
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.updateCalled)
	assert.Equal(t, int64(1), mockSvc.updateID)
	require.NotNil(t, mockSvc.updateReq.Status)
	assert.Equal(t, "IN_PROGRESS", *mockSvc.updateReq.Status)
	require.NotNil(t, mockSvc.updateReq.StatusNote)
	assert.Equal(t, "gestart", *mockSvc.updateReq.StatusNote)
}

func TestWorkOrderHandlerUpdateMalformedBody(t *testing.T) {
	mockSvc := &workOrderServiceMock{}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodPatch, "/api/work-orders/1", []byte(`{"status"`))
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.updateCalled)
}

func TestWorkOrderHandlerLogs(t *testing.T) {
	mockSvc := &workOrderServiceMock{logsResp: []models.WorkOrderLog{
		{ID: 2, WorkOrderID: 1, Status: "COMPLETED", CreatedAt: time.Now()},
	}}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/1/logs", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Logs(c)

	require.Equal(t, http.StatusOK, w.Code)
	var logs []models.WorkOrderLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "COMPLETED", logs[0].Status)
}

func TestWorkOrderHandlerStats(t *testing.T) {
	mockSvc := &workOrderServiceMock{statsResp: &models.WorkOrderStats{
		Total:    8,
		ByStatus: []models.StatusCount{{Status: models.StatusPending, Count: 8}},
	}}
	h := NewWorkOrderHandler(mockSvc, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/stats", nil)
	h.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	var stats models.WorkOrderStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 8, stats.Total)
}

func TestWorkOrderHandlerExportCSV(t *testing.T) {
	mockExports := &exportServiceMock{csvResp: []byte("Ordernummer\nAB12CD34\n")}
	h := NewWorkOrderHandler(&workOrderServiceMock{}, mockExports)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/export", nil)
	h.ExportCSV(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "werkorders.csv")
	assert.Contains(t, w.Body.String(), "AB12CD34")
}

func TestWorkOrderHandlerExportCSVDisabled(t *testing.T) {
	h := NewWorkOrderHandler(&workOrderServiceMock{}, nil)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/export", nil)
	h.ExportCSV(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkOrderHandlerExportPDF(t *testing.T) {
	mockExports := &exportServiceMock{pdfResp: []byte("%PDF-1.3"), pdfName: "werkorder-AB12CD34.pdf"}
	h := NewWorkOrderHandler(&workOrderServiceMock{}, mockExports)

	c, w := testContext(t, http.MethodGet, "/api/work-orders/1/pdf", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.ExportPDF(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "werkorder-AB12CD34.pdf")
}
