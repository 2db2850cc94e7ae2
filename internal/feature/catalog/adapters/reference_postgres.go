package adapters

import (
	"context"

	"gorm.io/gorm"

	authentity "calorie_backend/internal/feature/auth/domain/entity"
	foodlogentity "calorie_backend/internal/feature/foodlog/domain/entity"
	"calorie_backend/internal/feature/catalog/usecase"
)

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

// foodLogCounter はFoodLogCounterインターフェースのPostgreSQL実装です。
type foodLogCounter struct {
	db *gorm.DB
}

var _ usecase.FoodLogCounter = (*foodLogCounter)(nil)

// NewFoodLogCounter は指定されたDB接続でfoodLogCounterの新しいインスタンスを生成します。
func NewFoodLogCounter(db *gorm.DB) *foodLogCounter {
	return &foodLogCounter{db: db}
}

// CountByFoodItem は指定食品を参照する食事記録の件数を返します。
func (r *foodLogCounter) CountByFoodItem(ctx context.Context, foodItemID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&foodlogentity.FoodLogEntry{}).
		Where("food_item_id = ?", foodItemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
