package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/straatbeeld/werkorder-api/internal/dto"
	"github.com/straatbeeld/werkorder-api/internal/models"
	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
)

// listCacheKey holds the serialized full work-order list.
const listCacheKey = "workorders:list"

type workOrderStore interface {
	List(ctx context.Context) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id int64) (*models.WorkOrder, error)
	Create(ctx context.Context, order *models.WorkOrder) error
	Update(ctx context.Context, id int64, changes map[string]interface{}) error
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
	CountByMunicipality(ctx context.Context) ([]models.MunicipalityCount, error)
}

type workOrderLogStore interface {
	Create(ctx context.Context, log *models.WorkOrderLog) error
	ListByWorkOrder(ctx context.Context, workOrderID int64) ([]models.WorkOrderLog, error)
}

// WorkOrderService owns work-order validation and orchestration. Enum
// membership is enforced on both the create and the patch path.
type WorkOrderService struct {
	repo      workOrderStore
	logs      workOrderLogStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWorkOrderService constructs the service and registers the enum
// validations used by the payload structs.
func NewWorkOrderService(repo workOrderStore, logs workOrderLogStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *WorkOrderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &WorkOrderService{repo: repo, logs: logs, cache: cache, validator: validate, logger: logger}
	svc.validator.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})
	svc.validator.RegisterValidation("action_type", func(fl validator.FieldLevel) bool {
		return models.ActionType(fl.Field().String()).Valid()
	})
	svc.validator.RegisterValidation("furniture_type", func(fl validator.FieldLevel) bool {
		return models.FurnitureType(fl.Field().String()).Valid()
	})
	svc.validator.RegisterValidation("municipality", func(fl validator.FieldLevel) bool {
		return models.ValidMunicipality(fl.Field().String())
	})
	return svc
}

// List returns every work order, newest first, through the list cache
// when enabled.
func (s *WorkOrderService) List(ctx context.Context) ([]models.WorkOrder, error) {
	var cached []models.WorkOrder
	if hit, _ := s.cache.Get(ctx, listCacheKey, &cached); hit {
		return cached, nil
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list work orders")
	}
	s.cache.Set(ctx, listCacheKey, orders, 0)
	return orders, nil
}

// Get fetches one work order; a missing id is a NOT_FOUND outcome, not a
// failure.
func (s *WorkOrderService) Get(ctx context.Context, id int64) (*models.WorkOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "work order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to fetch work order")
	}
	return order, nil
}

// Create validates the payload and inserts a new PENDING work order.
func (s *WorkOrderService) Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*models.WorkOrder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work order payload")
	}

	order := &models.WorkOrder{
		RequestorName:  req.RequestorName,
		RequestorPhone: req.RequestorPhone,
		RequestorEmail: req.RequestorEmail,

		Municipality: models.NormalizeMunicipality(req.Municipality),

		ExecutionContactName:  req.ExecutionContactName,
		ExecutionContactPhone: req.ExecutionContactPhone,
		ExecutionContactEmail: req.ExecutionContactEmail,

		Status:        models.StatusPending,
		ActionType:    models.ActionType(req.ActionType),
		FurnitureType: models.FurnitureType(req.FurnitureType),

		AbriFormat:     req.AbriFormat,
		ObjectNumber:   req.ObjectNumber,
		DesiredDate:    req.DesiredDate,
		LocationSketch: req.LocationSketch,

		RemovalCity:     req.RemovalCity,
		RemovalStreet:   req.RemovalStreet,
		RemovalPostcode: req.RemovalPostcode,

		InstallationCity:     req.InstallationCity,
		InstallationXCoord:   req.InstallationXCoord,
		InstallationYCoord:   req.InstallationYCoord,
		InstallationAddress:  req.InstallationAddress,
		InstallationPostcode: req.InstallationPostcode,
		InstallationStopName: req.InstallationStopName,

		GroundRemovalPaving:     req.GroundRemovalPaving,
		GroundRemovalExcavation: req.GroundRemovalExcavation,
		GroundRemovalFilling:    req.GroundRemovalFilling,
		GroundRemovalRepaving:   req.GroundRemovalRepaving,
		GroundRemovalMaterials:  req.GroundRemovalMaterials,

		GroundInstallationExcavation:        req.GroundInstallationExcavation,
		GroundInstallationFilling:           req.GroundInstallationFilling,
		GroundInstallationRepaving:          req.GroundInstallationRepaving,
		GroundInstallationMaterials:         req.GroundInstallationMaterials,
		GroundInstallationExcessSoilAddress: req.GroundInstallationExcessSoilAddress,

		ElectricalDisconnect: req.ElectricalDisconnect,
		ElectricalConnect:    req.ElectricalConnect,

		BillingCity:       req.BillingCity,
		BillingAddress:    req.BillingAddress,
		BillingPostcode:   req.BillingPostcode,
		BillingDepartment: req.BillingDepartment,
		BillingAttention:  req.BillingAttention,
		BillingReference:  req.BillingReference,

		AdditionalNotes: req.AdditionalNotes,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to create work order")
	}

	s.cache.Invalidate(ctx, listCacheKey)
	s.logger.Info("work order created",
		zap.Int64("id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("municipality", order.Municipality),
	)
	return order, nil
}

// Update applies a partial patch. Only supplied fields change; a status
// change additionally appends one history entry.
func (s *WorkOrderService) Update(ctx context.Context, id int64, req dto.UpdateWorkOrderRequest) (*models.WorkOrder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work order patch")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := buildChanges(req)
	if err := s.repo.Update(ctx, id, changes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "work order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to update work order")
	}

	if req.Status != nil && models.Status(*req.Status) != current.Status {
		entry := &models.WorkOrderLog{
			WorkOrderID: id,
			Status:      *req.Status,
			Note:        req.StatusNote,
		}
		if err := s.logs.Create(ctx, entry); err != nil {
			// History is best-effort; the patch itself already landed.
			s.logger.Warn("failed to append work order log", zap.Int64("id", id), zap.Error(err))
		}
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, listCacheKey)
	return updated, nil
}

// Logs returns the status history for one order, newest first.
func (s *WorkOrderService) Logs(ctx context.Context, id int64) ([]models.WorkOrderLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByWorkOrder(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list work order logs")
	}
	return logs, nil
}

// Stats aggregates dashboard counts.
func (s *WorkOrderService) Stats(ctx context.Context) (*models.WorkOrderStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to aggregate work orders")
	}
	byMunicipality, err := s.repo.CountByMunicipality(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to aggregate work orders")
	}

	stats := &models.WorkOrderStats{ByStatus: byStatus, ByMunicipality: byMunicipality}
	for _, row := range byStatus {
		stats.Total += row.Count
	}
	return stats, nil
}

// buildChanges maps supplied patch fields onto their columns. Normalizes
// municipality the same way the insert path does.
func buildChanges(req dto.UpdateWorkOrderRequest) map[string]interface{} {
	changes := map[string]interface{}{}

	setString := func(column string, value *string) {
		if value != nil {
			changes[column] = *value
		}
	}
	setBool := func(column string, value *bool) {
		if value != nil {
			changes[column] = *value
		}
	}

	setString("requestor_name", req.RequestorName)
	setString("requestor_phone", req.RequestorPhone)
	setString("requestor_email", req.RequestorEmail)

	if req.Municipality != nil {
		changes["municipality"] = models.NormalizeMunicipality(*req.Municipality)
	}

	setString("execution_contact_name", req.ExecutionContactName)
	setString("execution_contact_phone", req.ExecutionContactPhone)
	setString("execution_contact_email", req.ExecutionContactEmail)

	setString("status", req.Status)
	setString("action_type", req.ActionType)
	setString("furniture_type", req.FurnitureType)

	setString("abri_format", req.AbriFormat)
	setString("object_number", req.ObjectNumber)
	if req.DesiredDate != nil {
		changes["desired_date"] = *req.DesiredDate
	}
	setString("location_sketch", req.LocationSketch)

	setString("removal_city", req.RemovalCity)
	setString("removal_street", req.RemovalStreet)
	setString("removal_postcode", req.RemovalPostcode)

	setString("installation_city", req.InstallationCity)
	setString("installation_x_coord", req.InstallationXCoord)
	setString("installation_y_coord", req.InstallationYCoord)
	setString("installation_address", req.InstallationAddress)
	setString("installation_postcode", req.InstallationPostcode)
	setString("installation_stop_name", req.InstallationStopName)

	setBool("ground_removal_paving", req.GroundRemovalPaving)
	setBool("ground_removal_excavation", req.GroundRemovalExcavation)
	setBool("ground_removal_filling", req.GroundRemovalFilling)
	setBool("ground_removal_repaving", req.GroundRemovalRepaving)
	setBool("ground_removal_materials", req.GroundRemovalMaterials)

	setBool("ground_installation_excavation", req.GroundInstallationExcavation)
	setBool("ground_installation_filling", req.GroundInstallationFilling)
	setBool("ground_installation_repaving", req.GroundInstallationRepaving)
	setBool("ground_installation_materials", req.GroundInstallationMaterials)
	setString("ground_installation_excess_soil_address", req.GroundInstallationExcessSoilAddress)

	setBool("electrical_disconnect", req.ElectricalDisconnect)
	setBool("electrical_connect", req.ElectricalConnect)

	setString("billing_city", req.BillingCity)
	setString("billing_address", req.BillingAddress)
	setString("billing_postcode", req.BillingPostcode)
	setString("billing_department", req.BillingDepartment)
	setString("billing_attention", req.BillingAttention)
	setString("billing_reference", req.BillingReference)

	setString("additional_notes", req.AdditionalNotes)

	return changes
}
