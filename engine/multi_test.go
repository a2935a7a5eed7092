package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harrisonbray/tackle"
	"github.com/harrisonbray/tackle/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiInspector_EligibleHoldings(t *testing.T) {
	customerID := uuid.New()
	otherCustomer := uuid.New()

	eligible := holding(customerID, "SL-1", 12, true)
	notMulti := holding(customerID, "CR-2", 12, false)
	foreign := holding(otherCustomer, "SL-3", 12, true)

	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{
			FindCustomerByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Customer, error) {
				if id == customerID {
					return &tackle.Customer{ID: customerID, Name: "Harbour Cranes Ltd"}, nil
				}
				return nil, tackle.NotFound("Customer not found")
			},
		},
		&mock.HoldingService{
			// Repository ignores the filter; the engine must still never
			// surface a foreign or non-multi-inspect holding.
			FindHoldingsFn: func(ctx context.Context, filter tackle.HoldingFilter) ([]*tackle.PlantHolding, error) {
				return []*tackle.PlantHolding{eligible, notMulti, foreign}, nil
			},
		},
		&mock.InspectorService{},
		&mock.InspectionService{},
	)

	holdings, err := m.EligibleHoldings(context.Background(), customerID, []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, eligible.ID, holdings[0].ID)

	_, err = m.EligibleHoldings(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, tackle.ENOTFOUND, tackle.ErrorCode(err))
}

func TestMultiInspector_EmptyEligibleIsValid(t *testing.T) {
	customerID := uuid.New()
	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{
			FindCustomerByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Customer, error) {
				return &tackle.Customer{ID: id}, nil
			},
		},
		&mock.HoldingService{},
		&mock.InspectorService{},
		&mock.InspectionService{},
	)

	holdings, err := m.EligibleHoldings(context.Background(), customerID, nil)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}

func multiMeta(inspectorID uuid.UUID) tackle.MultiInspectionMeta {
	return tackle.MultiInspectionMeta{
		CustomerID:     uuid.New(),
		InspectorID:    inspectorID,
		InspectionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:       "Quayside yard",
		TestDetails:    "Proof load to 1.25x SWL",
		MiscNotes:      "Annual thorough examination",
	}
}

func TestMultiInspector_CreateMultiInspection(t *testing.T) {
	inspectorID := uuid.New()
	var created []*tackle.Inspection

	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{},
		&mock.HoldingService{},
		&mock.InspectorService{
			FindInspectorByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
				if id == inspectorID {
					return &tackle.Inspector{ID: inspectorID}, nil
				}
				return nil, tackle.NotFound("Inspector not found")
			},
		},
		&mock.InspectionService{
			CreateInspectionFn: func(ctx context.Context, inspection *tackle.Inspection) error {
				inspection.ID = uuid.New()
				created = append(created, inspection)
				return nil
			},
		},
	)

	meta := multiMeta(inspectorID)
	items := []tackle.MultiInspectionItem{
		{HoldingID: uuid.New(), Defects: "link wear at 3%", Included: true},
		{HoldingID: uuid.New(), Included: false},
		{HoldingID: uuid.New(), Defects: "", Included: true},
	}

	results, err := m.CreateMultiInspection(context.Background(), meta, items)
	require.NoError(t, err)

	// One command per included item; the excluded item is skipped entirely.
	require.Len(t, results, 2)
	require.Len(t, created, 2)

	assert.Equal(t, items[0].HoldingID, created[0].HoldingID)
	assert.Equal(t, "link wear at 3%", created[0].Defects)
	assert.Equal(t, items[2].HoldingID, created[1].HoldingID)
	assert.Equal(t, "", created[1].Defects)

	for _, insp := range created {
		assert.Equal(t, meta.InspectorID, insp.InspectorID)
		assert.Equal(t, meta.InspectionDate, insp.InspectionDate)
		assert.Equal(t, meta.Location, insp.Location)
		assert.Equal(t, meta.TestDetails, insp.TestDetails)
		assert.Equal(t, meta.MiscNotes, insp.MiscNotes)
		// Per-inspection fields the batch form does not collect stay empty.
		assert.Empty(t, insp.RecordNumber)
		assert.Empty(t, insp.SafeWorking)
		assert.Empty(t, insp.Rectified)
		assert.Nil(t, insp.PreviousCheck)
		assert.Nil(t, insp.NextCheck)
	}

	for _, r := range results {
		assert.False(t, r.Failed())
		assert.NotNil(t, r.Inspection)
	}
}

func TestMultiInspector_NoItemsSelected(t *testing.T) {
	inspectorID := uuid.New()
	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{},
		&mock.HoldingService{},
		&mock.InspectorService{
			FindInspectorByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
				return &tackle.Inspector{ID: id}, nil
			},
		},
		&mock.InspectionService{},
	)

	meta := multiMeta(inspectorID)

	_, err := m.CreateMultiInspection(context.Background(), meta, nil)
	require.Error(t, err)
	assert.Equal(t, tackle.EINVALID, tackle.ErrorCode(err))

	_, err = m.CreateMultiInspection(context.Background(), meta, []tackle.MultiInspectionItem{
		{HoldingID: uuid.New(), Included: false},
		{HoldingID: uuid.New(), Included: false},
	})
	require.Error(t, err)
	assert.Equal(t, tackle.EINVALID, tackle.ErrorCode(err))
}

// Partial failure is reported per item; succeeded items stay created.
func TestMultiInspector_PartialFailure(t *testing.T) {
	inspectorID := uuid.New()
	badHolding := uuid.New()
	goodHolding := uuid.New()
	var created []*tackle.Inspection

	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{},
		&mock.HoldingService{},
		&mock.InspectorService{
			FindInspectorByIDFn: func(ctx context.Context, id uuid.UUID) (*tackle.Inspector, error) {
				return &tackle.Inspector{ID: id}, nil
			},
		},
		&mock.InspectionService{
			CreateInspectionFn: func(ctx context.Context, inspection *tackle.Inspection) error {
				if inspection.HoldingID == badHolding {
					return tackle.NotFound("Holding not found")
				}
				created = append(created, inspection)
				return nil
			},
		},
	)

	results, err := m.CreateMultiInspection(context.Background(), multiMeta(inspectorID), []tackle.MultiInspectionItem{
		{HoldingID: goodHolding, Included: true},
		{HoldingID: badHolding, Included: true},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.Equal(t, "Holding not found", results[1].Error)
	assert.Len(t, created, 1)
}

func TestMultiInspector_UnknownInspector(t *testing.T) {
	m := NewMultiInspector(testLogger(),
		&mock.CustomerService{},
		&mock.HoldingService{},
		&mock.InspectorService{},
		&mock.InspectionService{},
	)

	_, err := m.CreateMultiInspection(context.Background(), multiMeta(uuid.New()), []tackle.MultiInspectionItem{
		{HoldingID: uuid.New(), Included: true},
	})
	require.Error(t, err)
	assert.Equal(t, tackle.ENOTFOUND, tackle.ErrorCode(err))
}
