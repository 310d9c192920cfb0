package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/laptopfinder-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 100

// TxRunner is the slice of db.Client the store needs.
type TxRunner interface {
	DB() *gorm.DB
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Store persists the catalog as a mirror of the latest build.
type Store struct {
	db TxRunner
}

func NewStore(db TxRunner) *Store {
	return &Store{db: db}
}

// UpsertAll inserts or fully updates every product keyed by SKU, then deletes
// rows whose SKU is not in c. Both steps share one transaction.
func (s *Store) UpsertAll(ctx context.Context, c Catalog) error {
	c = Merge(c)
	rows := make([]models.CatalogProduct, 0, len(c))
	for _, product := range c {
		row, err := toRow(product)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if len(rows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sku"}},
				UpdateAll: true,
			}).CreateInBatches(&rows, upsertBatchSize).Error
			if err != nil {
				return fmt.Errorf("upsert catalog: %w", err)
			}
		}

		stale := tx.Model(&models.CatalogProduct{})
		if len(rows) == 0 {
			stale = stale.Session(&gorm.Session{AllowGlobalUpdate: true})
		} else {
			stale = stale.Where("sku NOT IN ?", c.SKUs())
		}
		if err := stale.Delete(&models.CatalogProduct{}).Error; err != nil {
			return fmt.Errorf("delete stale catalog rows: %w", err)
		}
		return nil
	})
}

// FetchAll returns the stored catalog in id order.
func (s *Store) FetchAll(ctx context.Context) (Catalog, error) {
	var rows []models.CatalogProduct
	if err := s.db.DB().WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return fromRows(rows), nil
}

// FetchByIDs returns products in the order of ids; unknown ids are omitted.
func (s *Store) FetchByIDs(ctx context.Context, ids []uint) (Catalog, error) {
	if len(ids) == 0 {
		return Catalog{}, nil
	}
	var rows []models.CatalogProduct
	if err := s.db.DB().WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch catalog by ids: %w", err)
	}

	byID := make(map[uint]models.CatalogProduct, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	out := make(Catalog, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, fromRow(row))
	}
	return out, nil
}

// FetchOne loads a single product or a NOT_FOUND error.
func (s *Store) FetchOne(ctx context.Context, id uint) (Product, error) {
	var row models.CatalogProduct
	err := s.db.DB().WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, pkgerrors.NotFound("product", id)
	}
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return fromRow(row), nil
}

// Count reports the number of stored products.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.DB().WithContext(ctx).Model(&models.CatalogProduct{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return count, nil
}

func fromRows(rows []models.CatalogProduct) Catalog {
	out := make(Catalog, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out
}
