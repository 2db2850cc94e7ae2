// Package entity はfoodlookupフィーチャーのドメインモデルを定義します。
package entity

// DetectedFood は画像から検出された食品候補を表します。
type DetectedFood struct {
	Name       string  // 検出された食品名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}
