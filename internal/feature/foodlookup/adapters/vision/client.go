// Package vision はGoogle Cloud Vision APIを使用した食品ラベル検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"calorie_backend/internal/feature/foodlookup/domain/entity"
	"calorie_backend/internal/feature/foodlookup/usecase"
)

// VisionFoodDetector はGoogle Cloud Vision APIのラベル検出を使用して食品候補を検出します。
type VisionFoodDetector struct {
	client *gvision.ImageAnnotatorClient
}

// VisionFoodDetectorがFoodDetectorを実装していることをコンパイル時に検証します。
var _ usecase.FoodDetector = (*VisionFoodDetector)(nil)

// NewVisionFoodDetector はADCを使用してVisionFoodDetectorの新しいインスタンスを生成します。
func NewVisionFoodDetector(ctx context.Context) (*VisionFoodDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionFoodDetector{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionFoodDetector) Close() error {
	return v.client.Close()
}

// DetectFoods は画像バイト列からラベル検出を実行し、食品候補を返します。
func (v *VisionFoodDetector) DetectFoods(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	foods := make([]entity.DetectedFood, 0, len(resp.Responses[0].LabelAnnotations))
	for _, label := range resp.Responses[0].LabelAnnotations {
		foods = append(foods, entity.DetectedFood{
			Name:       label.Description,
			Confidence: label.Score,
		})
	}

	return foods, nil
}
