// Package usecase はfoodlogフィーチャー（食事記録）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	catalogentity "calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/foodlog/domain/entity"
)

// FoodLogRepository は食事記録の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FoodLogRepository interface {
	// Create は新しい食事記録をストレージに永続化します。
	Create(ctx context.Context, e *entity.FoodLogEntry) error

	// FindByIDAndUser はIDと所有者の複合条件で食事記録を取得します。
	// 存在しない場合・所有者が異なる場合はいずれもErrEntryNotFoundを返します。
	FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.FoodLogEntry, error)

	// Update は食事記録の変更を永続化します。
	Update(ctx context.Context, e *entity.FoodLogEntry) error

	// Delete はIDと所有者の複合条件で食事記録を削除します。
	// 対象行が無い場合はErrEntryNotFoundを返します。
	Delete(ctx context.Context, id, userID uint) error

	// ListByUserAndDate は指定ユーザー・指定日の食事記録を食品詳細付きで返します。
	// 日付はカレンダー日付の完全一致で比較します。
	ListByUserAndDate(ctx context.Context, userID uint, date string) ([]entity.EntryWithFood, error)
}

// FoodItemReader は食品マスタの参照を抽象化します。
type FoodItemReader interface {
	// FindByIDAndUser はIDと所有者の複合条件で食品を取得します。
	// 存在しない場合・所有者が異なる場合はいずれもErrFoodItemNotFoundを返します。
	// それ以外のエラーはインフラ障害としてそのまま返します。
	FindByIDAndUser(ctx context.Context, id, userID uint) (*catalogentity.FoodItem, error)
}

// UserChecker はユーザーの存在確認を抽象化します。
type UserChecker interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// UpdateEntryInput は食事記録の部分更新入力です。
// nilのフィールドは「変更しない」を意味します。
type UpdateEntryInput struct {
	FoodItemID    *uint
	QuantityGrams *float64
	LoggedDate    *string
}

// foodLogUsecase は食事記録操作のビジネスロジックを実装します。
type foodLogUsecase struct {
	entries FoodLogRepository
	items   FoodItemReader
	users   UserChecker
}

// NewFoodLogUsecase はfoodLogUsecaseの新しいインスタンスを生成します。
func NewFoodLogUsecase(entries FoodLogRepository, items FoodItemReader, users UserChecker) *foodLogUsecase {
	return &foodLogUsecase{entries: entries, items: items, users: users}
}

// totalCalories は(カロリーレート, 数量)からカロリー合計を導出する純関数です。
// 書き込み経路でレートまたは数量が変わるたびに必ずこの関数で再計算します。
func totalCalories(caloriesPer100g, quantityGrams float64) float64 {
	return caloriesPer100g * quantityGrams / 100
}

// validateDate は日付がYYYY-MM-DD形式のカレンダー日付であることを検証します。
func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// CreateEntry は新しい食事記録を登録します。
// 参照する食品は記録するユーザー自身の所有でなければなりません。
// TotalCaloriesは食品の現在のレートと数量から導出して保存します。
func (u *foodLogUsecase) CreateEntry(ctx context.Context, userID, foodItemID uint, quantityGrams float64, loggedDate string) (*entity.FoodLogEntry, error) {
	if quantityGrams <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := validateDate(loggedDate); err != nil {
		return nil, err
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	// 食品の存在と所有を1つの複合条件で確認する
	item, err := u.items.FindByIDAndUser(ctx, foodItemID, userID)
	if err != nil {
		return nil, err
	}

	e := &entity.FoodLogEntry{
		UserID:        userID,
		FoodItemID:    foodItemID,
		QuantityGrams: quantityGrams,
		TotalCalories: totalCalories(item.CaloriesPer100g, quantityGrams),
		LoggedDate:    loggedDate,
	}
	if err := u.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEntry は食事記録を部分更新します。
// 食品または数量が変わる場合はTotalCaloriesを再計算します。
// 日付のみの変更ではTotalCaloriesに触れません。
func (u *foodLogUsecase) UpdateEntry(ctx context.Context, id, userID uint, in UpdateEntryInput) (*entity.FoodLogEntry, error) {
	e, err := u.entries.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	var item *catalogentity.FoodItem
	recalculate := false

	if in.FoodItemID != nil {
		// 新しい食品も記録ユーザー自身の所有でなければならない
		item, err = u.items.FindByIDAndUser(ctx, *in.FoodItemID, userID)
		if err != nil {
			return nil, err
		}
		e.FoodItemID = *in.FoodItemID
		recalculate = true
	}

	if in.QuantityGrams != nil {
		if *in.QuantityGrams <= 0 {
			return nil, ErrInvalidQuantity
		}
		e.QuantityGrams = *in.QuantityGrams
		recalculate = true
	}

	if in.LoggedDate != nil {
		if err := validateDate(*in.LoggedDate); err != nil {
			return nil, err
		}
		e.LoggedDate = *in.LoggedDate
	}

	if recalculate {
		// 数量のみの変更では既存の食品のレートを使う
		if item == nil {
			item, err = u.items.FindByIDAndUser(ctx, e.FoodItemID, userID)
			if err != nil {
				return nil, err
			}
		}
		e.TotalCalories = totalCalories(item.CaloriesPer100g, e.QuantityGrams)
	}

	if err := u.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEntry は食事記録を削除します。参照整合性の制約はありません。
func (u *foodLogUsecase) DeleteEntry(ctx context.Context, id, userID uint) error {
	return u.entries.Delete(ctx, id, userID)
}

// GetDailyLog は指定ユーザー・指定日の食事記録サマリーを返します。
// 合計カロリーは保存済みのTotalCaloriesを合算します（レートからの再計算は行いません）。
// 記録が無い日はTotalCalories=0・空のEntriesを返し、エラーにはしません。
func (u *foodLogUsecase) GetDailyLog(ctx context.Context, userID uint, date string) (*entity.DailyLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	entries, err := u.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var total float64
	for i := range entries {
		total += entries[i].TotalCalories
	}

	return &entity.DailyLog{
		Date:          date,
		TotalCalories: total,
		Entries:       entries,
	}, nil
}
