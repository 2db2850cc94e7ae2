package entity

// CalorieEstimate は食品のカロリー目安の推定結果を表します。
type CalorieEstimate struct {
	FoodName string // 推定対象の食品名
	Summary  string // AI生成のカロリー目安サマリー
}
