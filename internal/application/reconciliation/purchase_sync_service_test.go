package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncMocks struct {
	client      *MockHibobClient
	employees   *MockEmployeeRepository
	adjustments *MockAdjustmentRepository
	orders      *MockOrderRepository
	reviews     *MockReviewRepository
	runs        *MockSyncRunRepository
	coordinator *SyncCoordinator
}

func newTestSyncService() (*PurchaseSyncService, *syncMocks) {
	m := &syncMocks{
		client:      new(MockHibobClient),
		employees:   new(MockEmployeeRepository),
		adjustments: new(MockAdjustmentRepository),
		orders:      new(MockOrderRepository),
		reviews:     new(MockReviewRepository),
		runs:        new(MockSyncRunRepository),
		coordinator: NewSyncCoordinator(),
	}
	svc := NewPurchaseSyncService(m.coordinator, configuredSettings(), m.client,
		m.employees, m.adjustments, m.orders, m.reviews, m.runs, zap.NewNop())
	svc.SetInterRequestDelay(0)
	return svc, m
}

func linkedEmployee(t *testing.T) *budget.Employee {
	t.Helper()
	start := time.Now().AddDate(-1, 0, 0)
	employee, err := budget.NewEmployee("Sam Keller", "sam@example.com", &start)
	require.NoError(t, err)
	employee.SetTotalBudget(100000)
	require.NoError(t, employee.LinkHibob("bob-42"))
	return employee
}

func matchableOrder(t *testing.T, employeeID uuid.UUID, totalCents int64) order.Order {
	t.Helper()
	o, err := order.NewOrder(employeeID, "", []order.ItemSpec{
		{ProductID: uuid.New(), ProductName: "Desk", Quantity: 1, PriceCents: totalCents},
	})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return *o
}

func expenseRow(id, date, amount string) hibob.TableEntry {
	return hibob.TableEntry{
		ID: id,
		Values: map[string]any{
			"column_date":     date,
			"column_desc":     "external purchase",
			"column_amount":   amount,
			"column_currency": "EUR",
		},
	}
}

func TestPurchaseSyncService_Run(t *testing.T) {
	svc, m := newTestSyncService()
	employee := linkedEmployee(t)
	today := time.Now().Format("2006-01-02")

	// One order at 300.00: entry e1 matches it, e2 has no candidate,
	// e3 is skipped as already ingested
	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{*employee}, nil)
	m.client.On("GetTableEntries", mock.Anything, "bob-42", "table-1").Return([]hibob.TableEntry{
		expenseRow("e1", today, "300.00"),
		expenseRow("e2", today, "42.50"),
		expenseRow("e3", today, "10.00"),
	}, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, "e1").Return(false, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, "e2").Return(false, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, "e3").Return(true, nil)
	m.orders.On("FindBudgetRelevantByEmployee", mock.Anything, mock.Anything).
		Return([]order.Order{matchableOrder(t, employee.ID, 30000)}, nil)
	m.reviews.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseReview")).Return(nil)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	// The unmatched entry debits the budget and refreshes the cache
	m.adjustments.On("FindByHibobEntryID", mock.Anything, "e2").Return(nil, shared.ErrNotFound)
	m.adjustments.On("Save", mock.Anything, mock.AnythingOfType("*budget.BudgetAdjustment")).Return(nil)
	m.orders.On("SumBudgetRelevantByEmployee", mock.Anything, mock.Anything).Return(int64(30000), nil)
	m.adjustments.On("SumByEmployee", mock.Anything, mock.Anything).Return(int64(-4250), nil)
	m.employees.On("Save", mock.Anything, mock.AnythingOfType("*budget.Employee")).Return(nil)

	resp, err := svc.Run(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, string(reconciliation.RunStatusCompleted), resp.Status)
	assert.Equal(t, 2, resp.EntriesFound)
	assert.Equal(t, 1, resp.EntriesMatched)
	assert.Equal(t, 1, resp.EntriesAdjusted)
	assert.Equal(t, 0, resp.EntriesPending)
	m.reviews.AssertNumberOfCalls(t, "Save", 2)

	var savedAdjustment *budget.BudgetAdjustment
	for _, call := range m.adjustments.Calls {
		if call.Method == "Save" {
			savedAdjustment = call.Arguments.Get(1).(*budget.BudgetAdjustment)
		}
	}
	require.NotNil(t, savedAdjustment)
	assert.Equal(t, int64(-4250), savedAdjustment.AmountCents)
	assert.Equal(t, budget.AdjustmentSourceHibob, savedAdjustment.Source)
	require.NotNil(t, savedAdjustment.HibobEntryID)
	assert.Equal(t, "e2", *savedAdjustment.HibobEntryID)
}

func TestPurchaseSyncService_Run_ReusesOrphanedAdjustment(t *testing.T) {
	svc, m := newTestSyncService()
	employee := linkedEmployee(t)
	today := time.Now().Format("2006-01-02")

	// A previous run inserted the adjustment for e7 but crashed before
	// saving its review. The entry must resolve against the existing
	// adjustment instead of inserting a duplicate.
	orphaned, err := budget.NewHibobAdjustment(employee.ID, -4250, "Unmatched external purchase", "e7")
	require.NoError(t, err)

	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{*employee}, nil)
	m.client.On("GetTableEntries", mock.Anything, "bob-42", "table-1").Return([]hibob.TableEntry{
		expenseRow("e7", today, "42.50"),
	}, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, "e7").Return(false, nil)
	m.orders.On("FindBudgetRelevantByEmployee", mock.Anything, mock.Anything).Return([]order.Order{}, nil)
	m.adjustments.On("FindByHibobEntryID", mock.Anything, "e7").Return(orphaned, nil)
	m.reviews.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseReview")).Return(nil)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	resp, err := svc.Run(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, string(reconciliation.RunStatusCompleted), resp.Status)
	assert.Equal(t, 1, resp.EntriesAdjusted)
	m.adjustments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	var savedReview *reconciliation.PurchaseReview
	for _, call := range m.reviews.Calls {
		if call.Method == "Save" {
			savedReview = call.Arguments.Get(1).(*reconciliation.PurchaseReview)
		}
	}
	require.NotNil(t, savedReview)
	require.NotNil(t, savedReview.AdjustmentID)
	assert.Equal(t, orphaned.ID, *savedReview.AdjustmentID)
}

func TestPurchaseSyncService_Run_AmbiguousGoesPending(t *testing.T) {
	svc, m := newTestSyncService()
	employee := linkedEmployee(t)
	today := time.Now().Format("2006-01-02")

	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{*employee}, nil)
	m.client.On("GetTableEntries", mock.Anything, "bob-42", "table-1").Return([]hibob.TableEntry{
		expenseRow("e1", today, "300.00"),
	}, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, "e1").Return(false, nil)
	m.orders.On("FindBudgetRelevantByEmployee", mock.Anything, mock.Anything).
		Return([]order.Order{
			matchableOrder(t, employee.ID, 30000),
			matchableOrder(t, employee.ID, 30050),
		}, nil)
	m.reviews.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseReview")).Return(nil)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	resp, err := svc.Run(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.EntriesPending)
	assert.Equal(t, 0, resp.EntriesMatched)
	assert.Equal(t, 0, resp.EntriesAdjusted)
	m.adjustments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseSyncService_Run_ParseFailureSkipsRow(t *testing.T) {
	svc, m := newTestSyncService()
	employee := linkedEmployee(t)
	today := time.Now().Format("2006-01-02")

	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{*employee}, nil)
	m.client.On("GetTableEntries", mock.Anything, "bob-42", "table-1").Return([]hibob.TableEntry{
		expenseRow("e1", today, ""),
		expenseRow("e2", today, "300.00"),
	}, nil)
	m.reviews.On("ExistsByHibobEntryID", mock.Anything, mock.Anything).Return(false, nil)
	m.orders.On("FindBudgetRelevantByEmployee", mock.Anything, mock.Anything).
		Return([]order.Order{matchableOrder(t, employee.ID, 30000)}, nil)
	m.reviews.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseReview")).Return(nil)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	resp, err := svc.Run(context.Background(), uuid.New())

	require.NoError(t, err)
	// The unparseable row is reported implicitly via the undercount
	assert.Equal(t, 1, resp.EntriesFound)
	assert.Equal(t, string(reconciliation.RunStatusCompleted), resp.Status)
}

func TestPurchaseSyncService_Run_ClientFailureMarksRunFailed(t *testing.T) {
	svc, m := newTestSyncService()
	employee := linkedEmployee(t)

	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{*employee}, nil)
	m.client.On("GetTableEntries", mock.Anything, "bob-42", "table-1").Return(nil, assert.AnError)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	resp, err := svc.Run(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, string(reconciliation.RunStatusFailed), resp.Status)
	assert.Contains(t, resp.Error, assert.AnError.Error())
}

func TestPurchaseSyncService_Run_OnlyOneAtATime(t *testing.T) {
	svc, m := newTestSyncService()
	require.True(t, m.coordinator.TryAcquire(SyncKindPurchase))
	defer m.coordinator.Release(SyncKindPurchase)

	_, err := svc.Run(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrSyncInProgress)
	m.runs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseSyncService_Run_TableNotConfigured(t *testing.T) {
	svc, m := newTestSyncService()
	svc.settings = &fakeSettings{values: map[string]string{}}

	_, err := svc.Run(context.Background(), uuid.New())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TABLE_NOT_CONFIGURED", domainErr.Code)
	m.runs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseSyncService_Run_ReleasesCoordinator(t *testing.T) {
	svc, m := newTestSyncService()
	m.employees.On("FindHibobLinked", mock.Anything).Return([]budget.Employee{}, nil)
	m.runs.On("Save", mock.Anything, mock.AnythingOfType("*reconciliation.PurchaseSyncRun")).Return(nil)

	_, err := svc.Run(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.True(t, m.coordinator.TryAcquire(SyncKindPurchase))
	m.coordinator.Release(SyncKindPurchase)
}
