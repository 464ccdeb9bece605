package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/budget"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdjustmentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.BudgetAdjustmentModel{})
	require.NoError(t, err)

	return db
}

func TestGormBudgetAdjustmentRepository_SaveAndFindByID(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	adminID := uuid.New()
	adjustment, err := budget.NewManualAdjustment(employeeID, -2500, "damaged chair write-off", adminID)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, adjustment))

	found, err := repo.FindByID(ctx, adjustment.ID)
	require.NoError(t, err)
	assert.Equal(t, employeeID, found.EmployeeID)
	assert.Equal(t, int64(-2500), found.AmountCents)
	assert.Equal(t, budget.AdjustmentSourceManual, found.Source)
	require.NotNil(t, found.CreatedBy)
	assert.Equal(t, adminID, *found.CreatedBy)
	assert.Nil(t, found.HibobEntryID)
}

func TestGormBudgetAdjustmentRepository_FindByEmployee_NewestFirst(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	adminID := uuid.New()

	older, err := budget.NewManualAdjustment(employeeID, 1000, "first", adminID)
	require.NoError(t, err)
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Save(ctx, older))

	newer, err := budget.NewManualAdjustment(employeeID, 2000, "second", adminID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, newer))

	foreign, err := budget.NewManualAdjustment(uuid.New(), 3000, "other employee", adminID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, foreign))

	adjustments, err := repo.FindByEmployee(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, adjustments, 2)
	assert.Equal(t, "second", adjustments[0].Reason)
	assert.Equal(t, "first", adjustments[1].Reason)
}

func TestGormBudgetAdjustmentRepository_FindByHibobEntryID(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	adjustment, err := budget.NewHibobAdjustment(employeeID, -4200, "external purchase", "entry-77")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, adjustment))

	found, err := repo.FindByHibobEntryID(ctx, "entry-77")
	require.NoError(t, err)
	assert.Equal(t, adjustment.ID, found.ID)
	assert.Equal(t, budget.AdjustmentSourceHibob, found.Source)

	_, err = repo.FindByHibobEntryID(ctx, "entry-unknown")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBudgetAdjustmentRepository_SumByEmployee(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	adminID := uuid.New()

	plus, err := budget.NewManualAdjustment(employeeID, 5000, "goodwill", adminID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, plus))

	minus, err := budget.NewHibobAdjustment(employeeID, -1500, "external purchase", "entry-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, minus))

	foreign, err := budget.NewManualAdjustment(uuid.New(), 9999, "other", adminID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, foreign))

	sum, err := repo.SumByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), sum)
}

func TestGormBudgetAdjustmentRepository_SumByEmployee_Empty(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)

	sum, err := repo.SumByEmployee(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func TestGormBudgetAdjustmentRepository_Delete(t *testing.T) {
	db := setupAdjustmentTestDB(t)
	repo := NewGormBudgetAdjustmentRepository(db)
	ctx := context.Background()

	employeeID := uuid.New()
	adjustment, err := budget.NewHibobAdjustment(employeeID, -4200, "external purchase", "entry-9")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, adjustment))

	require.NoError(t, repo.Delete(ctx, adjustment.ID))

	_, err = repo.FindByID(ctx, adjustment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
