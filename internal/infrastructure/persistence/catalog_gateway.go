package persistence

import (
	"context"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/order"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogGateway implements order.CatalogGateway over the products
// table. The catalog itself is maintained by the shop frontend; the core
// only reads current name, price and active flag.
type GormCatalogGateway struct {
	db *gorm.DB
}

// NewGormCatalogGateway creates a new GormCatalogGateway
func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

// GetProducts returns product info for each requested id; unknown ids are
// absent from the result
func (g *GormCatalogGateway) GetProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.ProductInfo, error) {
	result := make(map[uuid.UUID]order.ProductInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.ProductModel
	if err := g.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		result[rows[i].ID] = rows[i].ToProductInfo()
	}
	return result, nil
}

var _ order.CatalogGateway = (*GormCatalogGateway)(nil)
