// Package adapters はfoodlogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogentity "calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/foodlog/domain/entity"
	"calorie_backend/internal/feature/foodlog/usecase"
)

// foodLogPostgres はFoodLogRepositoryインターフェースのPostgreSQL実装です。
type foodLogPostgres struct {
	db *gorm.DB
}

var _ usecase.FoodLogRepository = (*foodLogPostgres)(nil)

// NewFoodLogPostgres は指定されたDB接続でfoodLogPostgresリポジトリの新しいインスタンスを生成します。
func NewFoodLogPostgres(db *gorm.DB) *foodLogPostgres {
	return &foodLogPostgres{db: db}
}

// Create は食事記録をデータベースに追加します。
func (r *foodLogPostgres) Create(ctx context.Context, e *entity.FoodLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByIDAndUser はIDと所有者の複合条件で食事記録を1件取得します。
// 「存在しない」と「所有者が異なる」は区別せずusecase.ErrEntryNotFoundを返します。
func (r *foodLogPostgres) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.FoodLogEntry, error) {
	var e entity.FoodLogEntry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Update は食事記録の変更を保存します。
func (r *foodLogPostgres) Update(ctx context.Context, e *entity.FoodLogEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete はIDと所有者の複合条件で食事記録を削除します。
// 対象行が無い場合はusecase.ErrEntryNotFoundを返します。
func (r *foodLogPostgres) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.FoodLogEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}

// ListByUserAndDate は指定ユーザー・指定日の食事記録を食品詳細付きで返します。
// 日付はカレンダー日付文字列の完全一致で比較します。
func (r *foodLogPostgres) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]entity.EntryWithFood, error) {
	var logs []entity.FoodLogEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_date = ?", userID, date).
		Order("id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	out := make([]entity.EntryWithFood, 0, len(logs))
	if len(logs) == 0 {
		return out, nil
	}

	// 参照される食品をまとめて取得してID→食品のマップを作る
	itemIDs := make([]uint, 0, len(logs))
	seen := make(map[uint]struct{}, len(logs))
	for _, e := range logs {
		if _, ok := seen[e.FoodItemID]; ok {
			continue
		}
		seen[e.FoodItemID] = struct{}{}
		itemIDs = append(itemIDs, e.FoodItemID)
	}

	var items []catalogentity.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	itemsByID := make(map[uint]catalogentity.FoodItem, len(items))
	for _, it := range items {
		itemsByID[it.ID] = it
	}

	for _, e := range logs {
		out = append(out, entity.EntryWithFood{
			FoodLogEntry: e,
			FoodItem:     itemsByID[e.FoodItemID],
		})
	}
	return out, nil
}
