// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/catalog/usecase"
)

// foodItemPostgres はFoodItemRepositoryインターフェースのPostgreSQL実装です。
type foodItemPostgres struct {
	db *gorm.DB
}

var _ usecase.FoodItemRepository = (*foodItemPostgres)(nil)

// NewFoodItemPostgres は指定されたDB接続でfoodItemPostgresリポジトリの新しいインスタンスを生成します。
func NewFoodItemPostgres(db *gorm.DB) *foodItemPostgres {
	return &foodItemPostgres{db: db}
}

// Create は食品をデータベースに追加します。
func (r *foodItemPostgres) Create(ctx context.Context, item *entity.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ListByUser は指定ユーザーの全食品を名前の昇順（大文字小文字を区別）で返します。
func (r *foodItemPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.FoodItem, error) {
	items := make([]entity.FoodItem, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDAndUser はIDと所有者の複合条件で食品を1件取得します。
// 「存在しない」と「所有者が異なる」は区別せずusecase.ErrFoodItemNotFoundを返します。
func (r *foodItemPostgres) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFoodItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update は食品の変更を保存します。UpdatedAtはGORMが自動更新します。
func (r *foodItemPostgres) Update(ctx context.Context, item *entity.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete はIDと所有者の複合条件で食品を削除します。
// 対象行が無い場合はusecase.ErrFoodItemNotFoundを返します。
func (r *foodItemPostgres) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.FoodItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrFoodItemNotFound
	}
	return nil
}
