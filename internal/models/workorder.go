package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Status captures the work-order lifecycle. Transitions are not
// constrained; operators may move an order to any state.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether the status is one of the four known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ActionType enumerates the requested operation.
type ActionType string

const (
	ActionPlace    ActionType = "plaatsen"
	ActionRemove   ActionType = "verwijderen"
	ActionRelocate ActionType = "verplaatsen"
	ActionRaise    ActionType = "ophogen"
)

// Valid reports whether the action type is recognized.
func (a ActionType) Valid() bool {
	switch a {
	case ActionPlace, ActionRemove, ActionRelocate, ActionRaise:
		return true
	default:
		return false
	}
}

// HasInstallationSite reports whether the installation location group is
// meaningful for this action.
func (a ActionType) HasInstallationSite() bool {
	return a == ActionPlace || a == ActionRelocate
}

// HasRemovalSite reports whether the removal location group is
// meaningful for this action.
func (a ActionType) HasRemovalSite() bool {
	return a == ActionRemove || a == ActionRelocate || a == ActionRaise
}

// FurnitureType enumerates the category of street furniture.
type FurnitureType string

const (
	FurnitureAbri          FurnitureType = "abri"
	FurnitureMupi          FurnitureType = "mupi"
	FurnitureDriehoeksbord FurnitureType = "driehoeksbord"
	FurnitureReclamezuil   FurnitureType = "reclamezuil"
)

// Valid reports whether the furniture type is recognized.
func (f FurnitureType) Valid() bool {
	switch f {
	case FurnitureAbri, FurnitureMupi, FurnitureDriehoeksbord, FurnitureReclamezuil:
		return true
	default:
		return false
	}
}

// Municipalities is the fixed set of participating municipalities.
// Matching is case-insensitive; values are stored lower-cased.
var Municipalities = []string{
	"amsterdam",
	"rotterdam",
	"den haag",
	"utrecht",
	"eindhoven",
	"groningen",
	"tilburg",
	"almere",
	"breda",
	"nijmegen",
}

// ValidMunicipality reports whether name matches a known municipality,
// ignoring case and surrounding whitespace.
func ValidMunicipality(name string) bool {
	normalized := NormalizeMunicipality(name)
	for _, m := range Municipalities {
		if m == normalized {
			return true
		}
	}
	return false
}

// NormalizeMunicipality lower-cases and trims a municipality name into
// its stored form.
func NormalizeMunicipality(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day, serialized as YYYY-MM-DD.
// Desired execution dates are dates, not instants; normalizing here keeps
// the JSON and the DATE column in agreement.
type Date struct {
	time.Time
}

// NewDate truncates t to midnight UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for older clients, a full
// RFC 3339 timestamp whose time part is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
		}
	}
	*d = NewDate(t)
	return nil
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(raw string) error {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", raw, err)
	}
	*d = NewDate(t)
	return nil
}

// WorkOrder is one request to place, remove, relocate, or raise a piece
// of street furniture. JSON names are the external contract; the
// presentation layer binds to them verbatim.
type WorkOrder struct {
	ID          int64  `db:"id" json:"id"`
	OrderNumber string `db:"order_number" json:"orderNumber"`

	RequestorName  string `db:"requestor_name" json:"requestorName"`
	RequestorPhone string `db:"requestor_phone" json:"requestorPhone"`
	RequestorEmail string `db:"requestor_email" json:"requestorEmail"`

	Municipality string `db:"municipality" json:"municipality"`

	ExecutionContactName  string `db:"execution_contact_name" json:"executionContactName"`
	ExecutionContactPhone string `db:"execution_contact_phone" json:"executionContactPhone"`
	ExecutionContactEmail string `db:"execution_contact_email" json:"executionContactEmail"`

	Status        Status        `db:"status" json:"status"`
	ActionType    ActionType    `db:"action_type" json:"actionType"`
	FurnitureType FurnitureType `db:"furniture_type" json:"furnitureType"`

	AbriFormat     *string `db:"abri_format" json:"abriFormat,omitempty"`
	ObjectNumber   *string `db:"object_number" json:"objectNumber,omitempty"`
	DesiredDate    Date    `db:"desired_date" json:"desiredDate"`
	LocationSketch *string `db:"location_sketch" json:"locationSketch,omitempty"`

	RemovalCity     *string `db:"removal_city" json:"removalCity,omitempty"`
	RemovalStreet   *string `db:"removal_street" json:"removalStreet,omitempty"`
	RemovalPostcode *string `db:"removal_postcode" json:"removalPostcode,omitempty"`

	// Coordinates are opaque projected (RD) strings; consumers parse
	// defensively.
	InstallationCity     *string `db:"installation_city" json:"installationCity,omitempty"`
	InstallationXCoord   *string `db:"installation_x_coord" json:"installationXCoord,omitempty"`
	InstallationYCoord   *string `db:"installation_y_coord" json:"installationYCoord,omitempty"`
	InstallationAddress  *string `db:"installation_address" json:"installationAddress,omitempty"`
	InstallationPostcode *string `db:"installation_postcode" json:"installationPostcode,omitempty"`
	InstallationStopName *string `db:"installation_stop_name" json:"installationStopName,omitempty"`

	GroundRemovalPaving     bool `db:"ground_removal_paving" json:"groundRemovalPaving"`
	GroundRemovalExcavation bool `db:"ground_removal_excavation" json:"groundRemovalExcavation"`
	GroundRemovalFilling    bool `db:"ground_removal_filling" json:"groundRemovalFilling"`
	GroundRemovalRepaving   bool `db:"ground_removal_repaving" json:"groundRemovalRepaving"`
	GroundRemovalMaterials  bool `db:"ground_removal_materials" json:"groundRemovalMaterials"`

	GroundInstallationExcavation        bool    `db:"ground_installation_excavation" json:"groundInstallationExcavation"`
	GroundInstallationFilling           bool    `db:"ground_installation_filling" json:"groundInstallationFilling"`
	GroundInstallationRepaving          bool    `db:"ground_installation_repaving" json:"groundInstallationRepaving"`
	GroundInstallationMaterials         bool    `db:"ground_installation_materials" json:"groundInstallationMaterials"`
	GroundInstallationExcessSoilAddress *string `db:"ground_installation_excess_soil_address" json:"groundInstallationExcessSoilAddress,omitempty"`

	ElectricalDisconnect bool `db:"electrical_disconnect" json:"electricalDisconnect"`
	ElectricalConnect    bool `db:"electrical_connect" json:"electricalConnect"`

	BillingCity       string  `db:"billing_city" json:"billingCity"`
	BillingAddress    string  `db:"billing_address" json:"billingAddress"`
	BillingPostcode   string  `db:"billing_postcode" json:"billingPostcode"`
	BillingDepartment *string `db:"billing_department" json:"billingDepartment,omitempty"`
	BillingAttention  *string `db:"billing_attention" json:"billingAttention,omitempty"`
	BillingReference  *string `db:"billing_reference" json:"billingReference,omitempty"`

	AdditionalNotes *string `db:"additional_notes" json:"additionalNotes,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// WorkOrderLog is one append-only status event tied to a work order.
type WorkOrderLog struct {
	ID          int64     `db:"id" json:"id"`
	WorkOrderID int64     `db:"work_order_id" json:"workOrderId"`
	Status      string    `db:"status" json:"status"`
	Note        *string   `db:"note" json:"note,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// StatusCount is one row of the per-status dashboard aggregate.
type StatusCount struct {
	Status Status `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// MunicipalityCount is one row of the per-municipality aggregate.
type MunicipalityCount struct {
	Municipality string `db:"municipality" json:"municipality"`
	Count        int    `db:"count" json:"count"`
}

// WorkOrderStats aggregates counts for the staff dashboard.
type WorkOrderStats struct {
	Total          int                 `json:"total"`
	ByStatus       []StatusCount       `json:"byStatus"`
	ByMunicipality []MunicipalityCount `json:"byMunicipality"`
}
