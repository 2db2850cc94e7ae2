package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "calorie_backend/internal/feature/auth/domain/entity"
	catalogentity "calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/foodlog/usecase"
)

// foodItemReader はFoodItemReaderインターフェースのPostgreSQL実装です。
type foodItemReader struct {
	db *gorm.DB
}

var _ usecase.FoodItemReader = (*foodItemReader)(nil)

// NewFoodItemReader は指定されたDB接続でfoodItemReaderの新しいインスタンスを生成します。
func NewFoodItemReader(db *gorm.DB) *foodItemReader {
	return &foodItemReader{db: db}
}

// FindByIDAndUser はIDと所有者の複合条件で食品を1件取得します。
// 「存在しない」と「所有者が異なる」は区別せずusecase.ErrFoodItemNotFoundを返します。
func (r *foodItemReader) FindByIDAndUser(ctx context.Context, id, userID uint) (*catalogentity.FoodItem, error) {
	var item catalogentity.FoodItem
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

// userChecker はUserCheckerインターフェースのPostgreSQL実装です。
type userChecker struct {
	db *gorm.DB
}

var _ usecase.UserChecker = (*userChecker)(nil)

// NewUserChecker は指定されたDB接続でuserCheckerの新しいインスタンスを生成します。
func NewUserChecker(db *gorm.DB) *userChecker {
	return &userChecker{db: db}
}

// ExistsByID は指定IDのユーザーが存在するかを返します。
func (r *userChecker) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
