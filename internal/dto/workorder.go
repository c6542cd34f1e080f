package dto

import (
	"github.com/straatbeeld/werkorder-api/internal/models"
)

// CreateWorkOrderRequest is the POST /api/requests payload. Server-assigned
// fields (id, orderNumber, status, timestamps) are not accepted here and are
// silently ignored when clients send them anyway.
type CreateWorkOrderRequest struct {
	RequestorName  string `json:"requestorName" validate:"required"`
	RequestorPhone string `json:"requestorPhone" validate:"required"`
	RequestorEmail string `json:"requestorEmail" validate:"required,email"`

	Municipality string `json:"municipality" validate:"required,municipality"`

	ExecutionContactName  string `json:"executionContactName" validate:"required"`
	ExecutionContactPhone string `json:"executionContactPhone" validate:"required"`
	ExecutionContactEmail string `json:"executionContactEmail" validate:"required,email"`

	ActionType    string `json:"actionType" validate:"required,action_type"`
	FurnitureType string `json:"furnitureType" validate:"required,furniture_type"`

	AbriFormat     *string     `json:"abriFormat"`
	ObjectNumber   *string     `json:"objectNumber"`
	DesiredDate    models.Date `json:"desiredDate" validate:"required"`
	LocationSketch *string     `json:"locationSketch"`

	RemovalCity     *string `json:"removalCity"`
	RemovalStreet   *string `json:"removalStreet"`
	RemovalPostcode *string `json:"removalPostcode"`

	InstallationCity     *string `json:"installationCity"`
	InstallationXCoord   *string `json:"installationXCoord"`
	InstallationYCoord   *string `json:"installationYCoord"`
	InstallationAddress  *string `json:"installationAddress"`
	InstallationPostcode *string `json:"installationPostcode"`
	InstallationStopName *string `json:"installationStopName"`

	GroundRemovalPaving     bool `json:"groundRemovalPaving"`
	GroundRemovalExcavation bool `json:"groundRemovalExcavation"`
	GroundRemovalFilling    bool `json:"groundRemovalFilling"`
	GroundRemovalRepaving   bool `json:"groundRemovalRepaving"`
	GroundRemovalMaterials  bool `json:"groundRemovalMaterials"`

	GroundInstallationExcavation        bool    `json:"groundInstallationExcavation"`
	GroundInstallationFilling           bool    `json:"groundInstallationFilling"`
	GroundInstallationRepaving          bool    `json:"groundInstallationRepaving"`
	GroundInstallationMaterials         bool    `json:"groundInstallationMaterials"`
	GroundInstallationExcessSoilAddress *string `json:"groundInstallationExcessSoilAddress"`

	ElectricalDisconnect bool `json:"electricalDisconnect"`
	ElectricalConnect    bool `json:"electricalConnect"`

	BillingCity       string  `json:"billingCity" validate:"required"`
	BillingAddress    string  `json:"billingAddress" validate:"required"`
	BillingPostcode   string  `json:"billingPostcode" validate:"required"`
	BillingDepartment *string `json:"billingDepartment"`
	BillingAttention  *string `json:"billingAttention"`
	BillingReference  *string `json:"billingReference"`

	AdditionalNotes *string `json:"additionalNotes"`
}

// UpdateWorkOrderRequest is the PATCH /api/work-orders/:id payload. Every
// field is optional; only supplied fields change. Enum fields are checked
// against the same sets as on create.
type UpdateWorkOrderRequest struct {
	RequestorName  *string `json:"requestorName"`
	RequestorPhone *string `json:"requestorPhone"`
	RequestorEmail *string `json:"requestorEmail" validate:"omitempty,email"`

	Municipality *string `json:"municipality" validate:"omitempty,municipality"`

	ExecutionContactName  *string `json:"executionContactName"`
	ExecutionContactPhone *string `json:"executionContactPhone"`
	ExecutionContactEmail *string `json:"executionContactEmail" validate:"omitempty,email"`

	Status        *string `json:"status" validate:"omitempty,order_status"`
	ActionType    *string `json:"actionType" validate:"omitempty,action_type"`
	FurnitureType *string `json:"furnitureType" validate:"omitempty,furniture_type"`

	// StatusNote is stored on the history entry written when the patch
	// changes status; it is not a column on the order itself.
	StatusNote *string `json:"statusNote"`

	AbriFormat     *string      `json:"abriFormat"`
	ObjectNumber   *string      `json:"objectNumber"`
	DesiredDate    *models.Date `json:"desiredDate"`
	LocationSketch *string      `json:"locationSketch"`

	RemovalCity     *string `json:"removalCity"`
	RemovalStreet   *string `json:"removalStreet"`
	RemovalPostcode *string `json:"removalPostcode"`

	InstallationCity     *string `json:"installationCity"`
	InstallationXCoord   *string `json:"installationXCoord"`
	InstallationYCoord   *string `json:"installationYCoord"`
	InstallationAddress  *string `json:"installationAddress"`
	InstallationPostcode *string `json:"installationPostcode"`
	InstallationStopName *string `json:"installationStopName"`

	GroundRemovalPaving     *bool `json:"groundRemovalPaving"`
	GroundRemovalExcavation *bool `json:"groundRemovalExcavation"`
	GroundRemovalFilling    *bool `json:"groundRemovalFilling"`
	GroundRemovalRepaving   *bool `json:"groundRemovalRepaving"`
	GroundRemovalMaterials  *bool `json:"groundRemovalMaterials"`

	GroundInstallationExcavation        *bool   `json:"groundInstallationExcavation"`
	GroundInstallationFilling           *bool   `json:"groundInstallationFilling"`
	GroundInstallationRepaving          *bool   `json:"groundInstallationRepaving"`
	GroundInstallationMaterials         *bool   `json:"groundInstallationMaterials"`
	GroundInstallationExcessSoilAddress *string `json:"groundInstallationExcessSoilAddress"`

	ElectricalDisconnect *bool `json:"electricalDisconnect"`
	ElectricalConnect    *bool `json:"electricalConnect"`

	BillingCity       *string `json:"billingCity"`
	BillingAddress    *string `json:"billingAddress"`
	BillingPostcode   *string `json:"billingPostcode"`
	BillingDepartment *string `json:"billingDepartment"`
	BillingAttention  *string `json:"billingAttention"`
	BillingReference  *string `json:"billingReference"`

	AdditionalNotes *string `json:"additionalNotes"`
}
