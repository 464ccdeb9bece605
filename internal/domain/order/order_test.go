package order

import (
	"testing"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T) *Order {
	o, err := NewOrder(uuid.New(), "desk drop-off", []ItemSpec{
		{ProductID: uuid.New(), ProductName: "Standing Desk", Quantity: 1, PriceCents: 45000},
		{ProductID: uuid.New(), ProductName: "Monitor Arm", Quantity: 2, PriceCents: 2500},
	})
	require.NoError(t, err)
	return o
}

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []Status{
		StatusPending, StatusOrdered, StatusDelivered, StatusRejected,
		StatusCancelled, StatusReturnRequested, StatusReturned,
	}
	legal := map[Status][]Status{
		StatusPending:         {StatusOrdered, StatusRejected},
		StatusOrdered:         {StatusDelivered, StatusCancelled},
		StatusDelivered:       {StatusReturnRequested},
		StatusReturnRequested: {StatusReturned},
	}

	// Every (current, requested) pair outside the legality table must be
	// refused; every pair inside it must be allowed.
	for _, from := range all {
		allowed := map[Status]bool{}
		for _, to := range legal[from] {
			allowed[to] = true
		}
		for _, to := range all {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusReturned.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
}

func TestStatus_CountsAgainstBudget(t *testing.T) {
	assert.True(t, StatusPending.CountsAgainstBudget())
	assert.True(t, StatusOrdered.CountsAgainstBudget())
	assert.True(t, StatusDelivered.CountsAgainstBudget())
	assert.False(t, StatusRejected.CountsAgainstBudget())
	assert.False(t, StatusCancelled.CountsAgainstBudget())
	assert.False(t, StatusReturned.CountsAgainstBudget())
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from live prices", func(t *testing.T) {
		o := createTestOrder(t)
		assert.Equal(t, int64(50000), o.TotalCents)
		assert.Equal(t, StatusPending, o.Status)
		assert.Len(t, o.Items, 2)
		assert.Len(t, o.GetDomainEvents(), 1)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), "", nil)
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "EMPTY_CART", derr.Code)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), "", []ItemSpec{
			{ProductID: uuid.New(), ProductName: "Desk", Quantity: 0, PriceCents: 100},
		})
		assert.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	actor := uuid.New()

	t.Run("stamps reviewer on success", func(t *testing.T) {
		o := createTestOrder(t)
		err := o.TransitionTo(StatusOrdered, actor, "approved")
		require.NoError(t, err)
		assert.Equal(t, StatusOrdered, o.Status)
		require.NotNil(t, o.ReviewedBy)
		assert.Equal(t, actor, *o.ReviewedBy)
		assert.NotNil(t, o.ReviewedAt)
	})

	t.Run("rejection requires a note", func(t *testing.T) {
		o := createTestOrder(t)
		err := o.TransitionTo(StatusRejected, actor, "  ")
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "REJECTION_NOTE_REQUIRED", derr.Code)

		require.NoError(t, o.TransitionTo(StatusRejected, actor, "over budget category"))
	})

	t.Run("illegal transition enumerates allowed states", func(t *testing.T) {
		o := createTestOrder(t)
		err := o.TransitionTo(StatusDelivered, actor, "")
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", derr.Code)
		assert.Contains(t, derr.Message, "pending")
		assert.Contains(t, derr.Message, "ordered, rejected")
	})

	t.Run("terminal states refuse everything", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.TransitionTo(StatusRejected, actor, "duplicate request"))
		err := o.TransitionTo(StatusOrdered, actor, "")
		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Contains(t, derr.Message, "allowed: none")
	})
}

func TestOrder_SyncState(t *testing.T) {
	actor := uuid.New()

	t.Run("MarkSynced requires all items synced", func(t *testing.T) {
		o := createTestOrder(t)
		err := o.MarkSynced(actor, time.Now())
		assert.Error(t, err)

		for i := range o.Items {
			o.Items[i].HibobSynced = true
		}
		require.NoError(t, o.MarkSynced(actor, time.Now()))
		assert.True(t, o.IsSynced())
	})

	t.Run("UnsyncedItems returns only pending lines", func(t *testing.T) {
		o := createTestOrder(t)
		o.Items[0].HibobSynced = true
		unsynced := o.UnsyncedItems()
		require.Len(t, unsynced, 1)
		assert.Equal(t, o.Items[1].ID, unsynced[0].ID)
	})

	t.Run("ClearSyncState resets order and items", func(t *testing.T) {
		o := createTestOrder(t)
		for i := range o.Items {
			o.Items[i].HibobSynced = true
		}
		require.NoError(t, o.MarkSynced(actor, time.Now()))

		o.ClearSyncState()
		assert.False(t, o.IsSynced())
		assert.Len(t, o.UnsyncedItems(), 2)
	})
}

func TestItem_ExpenseDescription(t *testing.T) {
	o := createTestOrder(t)
	desc := o.Items[0].ExpenseDescription()
	assert.Contains(t, desc, "Standing Desk x1")
	assert.Contains(t, desc, "order ")
}
