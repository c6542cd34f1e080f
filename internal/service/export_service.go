package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/straatbeeld/werkorder-api/internal/models"
	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
	"github.com/straatbeeld/werkorder-api/pkg/export"
)

type exportStore interface {
	List(ctx context.Context) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id int64) (*models.WorkOrder, error)
}

// ExportService renders work orders as downloadable documents: a CSV of
// the full list for staff spreadsheets and a printable per-order PDF
// work sheet for field crews.
type ExportService struct {
	repo   exportStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(repo exportStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:   repo,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// WorkOrdersCSV renders the full work-order list as CSV.
func (s *ExportService) WorkOrdersCSV(ctx context.Context) ([]byte, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list work orders for export")
	}

	table := export.Table{
		Headers: []string{"Ordernummer", "Status", "Actie", "Object", "Gemeente", "Aanvrager", "Gewenste datum", "Aangemaakt"},
		Rows:    make([][]string, 0, len(orders)),
	}
	for _, order := range orders {
		table.Rows = append(table.Rows, []string{
			order.OrderNumber,
			models.StatusLabel(order.Status),
			models.ActionTypeLabel(order.ActionType),
			models.FurnitureTypeLabel(order.FurnitureType),
			order.Municipality,
			order.RequestorName,
			order.DesiredDate.Format("2006-01-02"),
			order.CreatedAt.Format(time.RFC3339),
		})
	}

	payload, err := s.csv.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
	}
	return payload, nil
}

// WorkOrderPDF renders one order as a printable work sheet. The second
// return value is the suggested download filename.
func (s *ExportService) WorkOrderPDF(ctx context.Context, id int64) ([]byte, string, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", mapStoreErr(err, "work order not found")
	}

	sections := []export.Section{
		{
			Title: "Aanvraag",
			Fields: []export.Field{
				{Label: "Ordernummer", Value: order.OrderNumber},
				{Label: "Status", Value: models.StatusLabel(order.Status)},
				{Label: "Actie", Value: models.ActionTypeLabel(order.ActionType)},
				{Label: "Object", Value: models.FurnitureTypeLabel(order.FurnitureType)},
				{Label: "Objectnummer", Value: deref(order.ObjectNumber)},
				{Label: "Gemeente", Value: order.Municipality},
				{Label: "Gewenste datum", Value: order.DesiredDate.Format("2006-01-02")},
			},
		},
		{
			Title: "Aanvrager",
			Fields: []export.Field{
				{Label: "Naam", Value: order.RequestorName},
				{Label: "Telefoon", Value: order.RequestorPhone},
				{Label: "E-mail", Value: order.RequestorEmail},
			},
		},
		{
			Title: "Contact uitvoering",
			Fields: []export.Field{
				{Label: "Naam", Value: order.ExecutionContactName},
				{Label: "Telefoon", Value: order.ExecutionContactPhone},
				{Label: "E-mail", Value: order.ExecutionContactEmail},
			},
		},
	}

	if order.ActionType.HasRemovalSite() {
		sections = append(sections, export.Section{
			Title: "Locatie verwijderen",
			Fields: []export.Field{
				{Label: "Plaats", Value: deref(order.RemovalCity)},
				{Label: "Straat", Value: deref(order.RemovalStreet)},
				{Label: "Postcode", Value: deref(order.RemovalPostcode)},
			},
		})
	}
	if order.ActionType.HasInstallationSite() {
		sections = append(sections, export.Section{
			Title: "Locatie plaatsen",
			Fields: []export.Field{
				{Label: "Plaats", Value: deref(order.InstallationCity)},
				{Label: "Adres", Value: deref(order.InstallationAddress)},
				{Label: "Postcode", Value: deref(order.InstallationPostcode)},
				{Label: "X-coordinaat", Value: deref(order.InstallationXCoord)},
				{Label: "Y-coordinaat", Value: deref(order.InstallationYCoord)},
				{Label: "Haltenaam", Value: deref(order.InstallationStopName)},
			},
		})
	}

	sections = append(sections,
		export.Section{
			Title: "Grondwerk",
			Fields: []export.Field{
				{Label: "Bestrating opnemen", Value: yesNo(order.GroundRemovalPaving)},
				{Label: "Ontgraven (verwijderlocatie)", Value: yesNo(order.GroundRemovalExcavation)},
				{Label: "Aanvullen (verwijderlocatie)", Value: yesNo(order.GroundRemovalFilling)},
				{Label: "Herstraten (verwijderlocatie)", Value: yesNo(order.GroundRemovalRepaving)},
				{Label: "Materialen (verwijderlocatie)", Value: yesNo(order.GroundRemovalMaterials)},
				{Label: "Ontgraven (plaatslocatie)", Value: yesNo(order.GroundInstallationExcavation)},
				{Label: "Aanvullen (plaatslocatie)", Value: yesNo(order.GroundInstallationFilling)},
				{Label: "Herstraten (plaatslocatie)", Value: yesNo(order.GroundInstallationRepaving)},
				{Label: "Materialen (plaatslocatie)", Value: yesNo(order.GroundInstallationMaterials)},
				{Label: "Afvoeradres overtollige grond", Value: deref(order.GroundInstallationExcessSoilAddress)},
			},
		},
		export.Section{
			Title: "Elektra",
			Fields: []export.Field{
				{Label: "Afkoppelen", Value: yesNo(order.ElectricalDisconnect)},
				{Label: "Aankoppelen", Value: yesNo(order.ElectricalConnect)},
			},
		},
		export.Section{
			Title: "Facturatie",
			Fields: []export.Field{
				{Label: "Plaats", Value: order.BillingCity},
				{Label: "Adres", Value: order.BillingAddress},
				{Label: "Postcode", Value: order.BillingPostcode},
				{Label: "Afdeling", Value: deref(order.BillingDepartment)},
				{Label: "Ter attentie van", Value: deref(order.BillingAttention)},
				{Label: "Referentie", Value: deref(order.BillingReference)},
			},
		},
	)

	if order.AdditionalNotes != nil && *order.AdditionalNotes != "" {
		sections = append(sections, export.Section{
			Title:  "Opmerkingen",
			Fields: []export.Field{{Label: "Toelichting", Value: *order.AdditionalNotes}},
		})
	}

	payload, err := s.pdf.RenderSheet(fmt.Sprintf("Werkorder %s", order.OrderNumber), sections)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
	}
	return payload, fmt.Sprintf("werkorder-%s.pdf", order.OrderNumber), nil
}

func mapStoreErr(err error, notFoundMsg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFoundMsg)
	}
	return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "storage operation failed")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func yesNo(value bool) string {
	if value {
		return "Ja"
	}
	return "Nee"
}
