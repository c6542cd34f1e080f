package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/straatbeeld/werkorder-api/internal/models"
)

const workOrderColumns = `id, order_number, requestor_name, requestor_phone, requestor_email,
       municipality, execution_contact_name, execution_contact_phone, execution_contact_email,
       status, action_type, furniture_type, abri_format, object_number, desired_date, location_sketch,
       removal_city, removal_street, removal_postcode,
       installation_city, installation_x_coord, installation_y_coord, installation_address,
       installation_postcode, installation_stop_name,
       ground_removal_paving, ground_removal_excavation, ground_removal_filling,
       ground_removal_repaving, ground_removal_materials,
       ground_installation_excavation, ground_installation_filling, ground_installation_repaving,
       ground_installation_materials, ground_installation_excess_soil_address,
       electrical_disconnect, electrical_connect,
       billing_city, billing_address, billing_postcode, billing_department, billing_attention,
       billing_reference, additional_notes, created_at, updated_at`

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// order_number carries a UNIQUE constraint; on the astronomically rare
// collision the insert is retried with a fresh number.
const orderNumberRetries = 3

// WorkOrderRepository persists work orders.
type WorkOrderRepository struct {
	db *sqlx.DB
}

// NewWorkOrderRepository constructs the repository.
func NewWorkOrderRepository(db *sqlx.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// List returns every work order, newest first.
func (r *WorkOrderRepository) List(ctx context.Context) ([]models.WorkOrder, error) {
	query := fmt.Sprintf("SELECT %s FROM work_orders ORDER BY created_at DESC", workOrderColumns)
	orders := []models.WorkOrder{}
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	return orders, nil
}

// GetByID fetches one work order. sql.ErrNoRows signals the expected
// not-found outcome.
func (r *WorkOrderRepository) GetByID(ctx context.Context, id int64) (*models.WorkOrder, error) {
	query := fmt.Sprintf("SELECT %s FROM work_orders WHERE id = $1", workOrderColumns)
	var order models.WorkOrder
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts a new work order, assigning the order number, PENDING
// status, and identical created/updated timestamps.
func (r *WorkOrderRepository) Create(ctx context.Context, order *models.WorkOrder) error {
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	const query = `INSERT INTO work_orders
	(order_number, requestor_name, requestor_phone, requestor_email,
	 municipality, execution_contact_name, execution_contact_phone, execution_contact_email,
	 status, action_type, furniture_type, abri_format, object_number, desired_date, location_sketch,
	 removal_city, removal_street, removal_postcode,
	 installation_city, installation_x_coord, installation_y_coord, installation_address,
	 installation_postcode, installation_stop_name,
	 ground_removal_paving, ground_removal_excavation, ground_removal_filling,
	 ground_removal_repaving, ground_removal_materials,
	 ground_installation_excavation, ground_installation_filling, ground_installation_repaving,
	 ground_installation_materials, ground_installation_excess_soil_address,
	 electrical_disconnect, electrical_connect,
	 billing_city, billing_address, billing_postcode, billing_department, billing_attention,
	 billing_reference, additional_notes, created_at, updated_at)
	VALUES (:order_number, :requestor_name, :requestor_phone, :requestor_email,
	 :municipality, :execution_contact_name, :execution_contact_phone, :execution_contact_email,
	 :status, :action_type, :furniture_type, :abri_format, :object_number, :desired_date, :location_sketch,
	 :removal_city, :removal_street, :removal_postcode,
	 :installation_city, :installation_x_coord, :installation_y_coord, :installation_address,
	 :installation_postcode, :installation_stop_name,
	 :ground_removal_paving, :ground_removal_excavation, :ground_removal_filling,
	 :ground_removal_repaving, :ground_removal_materials,
	 :ground_installation_excavation, :ground_installation_filling, :ground_installation_repaving,
	 :ground_installation_materials, :ground_installation_excess_soil_address,
	 :electrical_disconnect, :electrical_connect,
	 :billing_city, :billing_address, :billing_postcode, :billing_department, :billing_attention,
	 :billing_reference, :additional_notes, :created_at, :updated_at)
	RETURNING id`

	var lastErr error
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		number, err := generateOrderNumber()
		if err != nil {
			return fmt.Errorf("generate order number: %w", err)
		}
		order.OrderNumber = number

		rows, err := r.db.NamedQueryContext(ctx, query, order)
		if err != nil {
			if isUniqueViolation(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("create work order: %w", err)
		}
		if rows.Next() {
			if err := rows.Scan(&order.ID); err != nil {
				rows.Close()
				return fmt.Errorf("scan work order id: %w", err)
			}
		}
		return rows.Close()
	}
	return fmt.Errorf("create work order: order number collisions exhausted retries: %w", lastErr)
}

// Update applies the supplied column changes and refreshes updated_at.
// Returns sql.ErrNoRows when the id does not exist.
func (r *WorkOrderRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		changes = map[string]interface{}{}
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	setParts := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		setParts = append(setParts, fmt.Sprintf("%s = :%s", column, column))
	}
	setParts = append(setParts, "updated_at = :updated_at")

	params := make(map[string]interface{}, len(changes)+2)
	for column, value := range changes {
		params[column] = value
	}
	params["updated_at"] = time.Now().UTC()
	params["id"] = id

	query := fmt.Sprintf("UPDATE work_orders SET %s WHERE id = :id", strings.Join(setParts, ", "))
	result, err := r.db.NamedExecContext(ctx, query, params)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check work order update rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountByStatus aggregates orders per lifecycle state.
func (r *WorkOrderRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	const query = `SELECT status, COUNT(*) AS count FROM work_orders GROUP BY status ORDER BY status`
	counts := []models.StatusCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count work orders by status: %w", err)
	}
	return counts, nil
}

// CountByMunicipality aggregates orders per municipality.
func (r *WorkOrderRepository) CountByMunicipality(ctx context.Context) ([]models.MunicipalityCount, error) {
	const query = `SELECT municipality, COUNT(*) AS count FROM work_orders GROUP BY municipality ORDER BY count DESC, municipality`
	counts := []models.MunicipalityCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count work orders by municipality: %w", err)
	}
	return counts, nil
}

func generateOrderNumber() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return string(buf), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
