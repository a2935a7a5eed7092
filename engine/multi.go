package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
)

// Compile-time check that MultiInspector implements tackle.MultiInspectService.
var _ tackle.MultiInspectService = (*MultiInspector)(nil)

// MultiInspector expands one batch inspection request into many individual
// inspection records sharing common metadata. This is the only place one user
// action fans out into multiple persisted records; the underlying creates are
// not transactional, so per-item outcomes are reported instead of rolled back.
type MultiInspector struct {
	customers   tackle.CustomerService
	holdings    tackle.HoldingService
	inspectors  tackle.InspectorService
	inspections tackle.InspectionService
	logger      *slog.Logger
}

// NewMultiInspector creates a multi-inspection expander over the given
// repositories.
func NewMultiInspector(
	logger *slog.Logger,
	customers tackle.CustomerService,
	holdings tackle.HoldingService,
	inspectors tackle.InspectorService,
	inspections tackle.InspectionService,
) *MultiInspector {
	return &MultiInspector{
		customers:   customers,
		holdings:    holdings,
		inspectors:  inspectors,
		inspections: inspections,
		logger:      logger,
	}
}

func (m *MultiInspector) EligibleHoldings(ctx context.Context, customerID uuid.UUID, categoryIDs []uuid.UUID) ([]*tackle.PlantHolding, error) {
	if _, err := m.customers.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	mi := true
	candidates, err := m.holdings.FindHoldings(ctx, tackle.HoldingFilter{
		CustomerID:   &customerID,
		MultiInspect: &mi,
		CategoryIDs:  categoryIDs,
	})
	if err != nil {
		return nil, err
	}

	// Re-check ownership and the multi-inspect flag here so eligibility never
	// depends on the repository honoring every filter field.
	eligible := make([]*tackle.PlantHolding, 0, len(candidates))
	for _, h := range candidates {
		if h.CustomerID != customerID || !h.MultiInspect {
			continue
		}
		eligible = append(eligible, h)
	}
	return eligible, nil
}

func (m *MultiInspector) CreateMultiInspection(ctx context.Context, meta tackle.MultiInspectionMeta, items []tackle.MultiInspectionItem) ([]*tackle.MultiInspectionResult, error) {
	if meta.InspectionDate.IsZero() {
		return nil, tackle.Invalid("Inspection date is required")
	}
	if _, err := m.inspectors.FindInspectorByID(ctx, meta.InspectorID); err != nil {
		return nil, err
	}

	included := make([]tackle.MultiInspectionItem, 0, len(items))
	for _, item := range items {
		if item.Included {
			included = append(included, item)
		}
	}
	if len(included) == 0 {
		return nil, tackle.Invalid("No items selected")
	}

	results := make([]*tackle.MultiInspectionResult, 0, len(included))
	failed := 0
	for _, item := range included {
		inspection := &tackle.Inspection{
			HoldingID:      item.HoldingID,
			InspectorID:    meta.InspectorID,
			InspectionDate: meta.InspectionDate,
			Location:       meta.Location,
			TestDetails:    meta.TestDetails,
			MiscNotes:      meta.MiscNotes,
			Defects:        item.Defects,
		}

		result := &tackle.MultiInspectionResult{HoldingID: item.HoldingID}
		if err := m.inspections.CreateInspection(ctx, inspection); err != nil {
			failed++
			result.Error = tackle.ErrorMessage(err)
			m.logger.Warn("multi-inspection item failed",
				slog.String("holding_id", item.HoldingID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			result.Inspection = inspection
		}
		results = append(results, result)
	}

	m.logger.Info("multi-inspection batch expanded",
		slog.String("customer_id", meta.CustomerID.String()),
		slog.Int("items", len(included)),
		slog.Int("failed", failed),
	)
	return results, nil
}
