package position

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	CreateAll(ctx context.Context, positions []Position) error
	FindAll(ctx context.Context) ([]Position, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateAll inserts all rows in one transaction so a mid-stream failure
// leaves no partial import behind.
func (r *repository) CreateAll(ctx context.Context, positions []Position) error {
	if len(positions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range positions {
			if err := tx.Create(&positions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).Order("created_at").Find(&positions).Error
	return positions, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Position{}).Count(&count).Error
	return count, err
}
