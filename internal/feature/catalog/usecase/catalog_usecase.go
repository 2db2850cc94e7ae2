// Package usecase はcatalogフィーチャー（食品マスタ）のビジネスロジックを実装します。
package usecase

import (
	"context"

	"calorie_backend/internal/feature/catalog/domain/entity"
)

// FoodItemRepository は食品マスタの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FoodItemRepository interface {
	// Create は新しい食品をストレージに永続化します。
	Create(ctx context.Context, item *entity.FoodItem) error

	// ListByUser は指定ユーザーの全食品を名前の昇順で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.FoodItem, error)

	// FindByIDAndUser はIDと所有者の複合条件で食品を取得します。
	// 存在しない場合・所有者が異なる場合はいずれもErrFoodItemNotFoundを返します。
	FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.FoodItem, error)

	// Update は食品の変更を永続化します。
	Update(ctx context.Context, item *entity.FoodItem) error

	// Delete はIDと所有者の複合条件で食品を削除します。
	// 対象行が無い場合はErrFoodItemNotFoundを返します。
	Delete(ctx context.Context, id, userID uint) error
}

// UserChecker はユーザーの存在確認を抽象化します。
type UserChecker interface {
	// ExistsByID は指定IDのユーザーが存在するかを返します。
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// FoodLogCounter は食品を参照している食事記録の件数取得を抽象化します。
// 削除時の参照整合性チェックに使用します。
type FoodLogCounter interface {
	// CountByFoodItem は指定食品を参照する食事記録の件数を返します。
	// 記録したユーザーが誰であるかは問いません。
	CountByFoodItem(ctx context.Context, foodItemID uint) (int64, error)
}

// UpdateFoodItemInput は食品の部分更新入力です。
// nilのフィールドは「変更しない」を意味します。
type UpdateFoodItemInput struct {
	Name            *string
	CaloriesPer100g *float64
}

// catalogUsecase は食品マスタ操作のビジネスロジックを実装します。
type catalogUsecase struct {
	items FoodItemRepository
	users UserChecker
	logs  FoodLogCounter
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(items FoodItemRepository, users UserChecker, logs FoodLogCounter) *catalogUsecase {
	return &catalogUsecase{items: items, users: users, logs: logs}
}

// CreateFoodItem は指定ユーザーの食品マスタに新しい食品を登録します。
// ユーザーが存在しない場合はErrUserNotFoundを返します。
func (u *catalogUsecase) CreateFoodItem(ctx context.Context, userID uint, name string, caloriesPer100g float64) (*entity.FoodItem, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if caloriesPer100g <= 0 {
		return nil, ErrInvalidCalories
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	item := &entity.FoodItem{
		UserID:          userID,
		Name:            name,
		CaloriesPer100g: caloriesPer100g,
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListFoodItems は指定ユーザーの全食品を名前の昇順で返します。
// ユーザーが存在しない場合も空スライスを返します（読み取りに存在チェックは行いません）。
func (u *catalogUsecase) ListFoodItems(ctx context.Context, userID uint) ([]entity.FoodItem, error) {
	return u.items.ListByUser(ctx, userID)
}

// UpdateFoodItem は食品の名前・カロリーレートを部分更新します。
// 省略されたフィールドは変更されません。更新日時は常に更新されます。
func (u *catalogUsecase) UpdateFoodItem(ctx context.Context, id, userID uint, in UpdateFoodItemInput) (*entity.FoodItem, error) {
	item, err := u.items.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrNameRequired
		}
		item.Name = *in.Name
	}
	if in.CaloriesPer100g != nil {
		if *in.CaloriesPer100g <= 0 {
			return nil, ErrInvalidCalories
		}
		item.CaloriesPer100g = *in.CaloriesPer100g
	}

	if err := u.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteFoodItem は食品を削除します。
// 1件以上の食事記録が参照している場合はErrFoodItemInUseを返し、削除しません。
func (u *catalogUsecase) DeleteFoodItem(ctx context.Context, id, userID uint) error {
	if _, err := u.items.FindByIDAndUser(ctx, id, userID); err != nil {
		return err
	}

	count, err := u.logs.CountByFoodItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrFoodItemInUse
	}

	return u.items.Delete(ctx, id, userID)
}
