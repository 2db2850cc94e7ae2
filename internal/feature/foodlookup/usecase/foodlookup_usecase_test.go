package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"calorie_backend/internal/feature/foodlookup/domain/entity"
	"calorie_backend/internal/feature/foodlookup/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockFoodDetector はFoodDetectorインターフェースのモック実装です。
type mockFoodDetector struct {
	DetectFoodsFunc  func(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error)
	DetectFoodsCalls int
}

func (m *mockFoodDetector) DetectFoods(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error) {
	m.DetectFoodsCalls++
	if m.DetectFoodsFunc != nil {
		return m.DetectFoodsFunc(ctx, imageData)
	}
	return nil, errors.New("DetectFoodsFunc is not implemented")
}

// mockCalorieEstimator はCalorieEstimatorインターフェースのモック実装です。
type mockCalorieEstimator struct {
	EstimateFunc  func(ctx context.Context, prompt string) (string, error)
	EstimateCalls int
}

func (m *mockCalorieEstimator) Estimate(ctx context.Context, prompt string) (string, error) {
	m.EstimateCalls++
	if m.EstimateFunc != nil {
		return m.EstimateFunc(ctx, prompt)
	}
	return "", errors.New("EstimateFunc is not implemented")
}

func TestFoodLookupUsecase_DetectFoods(t *testing.T) {
	ctx := context.Background()
	expectedFoods := []entity.DetectedFood{
		{Name: "Sushi", Confidence: 0.95},
		{Name: "Rice", Confidence: 0.87},
	}

	testCases := []struct {
		name          string
		imageData     []byte
		mockFunc      func(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error)
		expectedFoods []entity.DetectedFood
		expectedErr   string
	}{
		{
			name:      "success: foods detected",
			imageData: []byte("fake-image-data"),
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error) {
				return expectedFoods, nil
			},
			expectedFoods: expectedFoods,
		},
		{
			name:        "error: empty image data",
			imageData:   []byte{},
			expectedErr: "image data is empty",
		},
		{
			name:        "error: image too large",
			imageData:   make([]byte, usecase.MaxImageSize+1),
			expectedErr: "image size exceeds maximum",
		},
		{
			name:      "error: api returns error",
			imageData: []byte("fake-image-data"),
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error) {
				return nil, ErrAPI
			},
			expectedFoods: nil,
			expectedErr:   ErrAPI.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detector := &mockFoodDetector{DetectFoodsFunc: tc.mockFunc}
			estimator := &mockCalorieEstimator{}
			uc := usecase.NewFoodLookupUsecase(detector, estimator)

			foods, err := uc.DetectFoods(ctx, tc.imageData)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(foods, tc.expectedFoods) {
				t.Errorf("result mismatch: got %v, want %v", foods, tc.expectedFoods)
			}
		})
	}
}

func TestFoodLookupUsecase_EstimateCalories(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		foodName        string
		mockFunc        func(ctx context.Context, prompt string) (string, error)
		expectedSummary string
		expectedErr     string
	}{
		{
			name:     "success: estimate generated",
			foodName: "鶏むね肉",
			mockFunc: func(ctx context.Context, prompt string) (string, error) {
				return "鶏むね肉は100gあたり約105kcalです...", nil
			},
			expectedSummary: "鶏むね肉は100gあたり約105kcalです...",
		},
		{
			name:     "success: latin name with spaces",
			foodName: "Chicken Breast",
			mockFunc: func(ctx context.Context, prompt string) (string, error) {
				return "About 165 kcal per 100g.", nil
			},
			expectedSummary: "About 165 kcal per 100g.",
		},
		{
			name:        "error: empty food name",
			foodName:    "",
			expectedErr: "food name is required",
		},
		{
			name:        "error: food name too long",
			foodName:    strings.Repeat("あ", usecase.MaxFoodNameLength+1),
			expectedErr: "food name exceeds maximum length",
		},
		{
			name:        "error: invalid characters",
			foodName:    "rice; DROP TABLE food_items",
			expectedErr: "food name contains invalid characters",
		},
		{
			name:     "error: api returns error",
			foodName: "鶏むね肉",
			mockFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", ErrAPI
			},
			expectedErr: ErrAPI.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detector := &mockFoodDetector{}
			estimator := &mockCalorieEstimator{EstimateFunc: tc.mockFunc}
			uc := usecase.NewFoodLookupUsecase(detector, estimator)

			result, err := uc.EstimateCalories(ctx, tc.foodName)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.FoodName != tc.foodName {
				t.Errorf("food name mismatch: got %q, want %q", result.FoodName, tc.foodName)
			}
			if result.Summary != tc.expectedSummary {
				t.Errorf("summary mismatch: got %q, want %q", result.Summary, tc.expectedSummary)
			}
		})
	}
}

func TestFoodLookupUsecase_EstimateCalories_Prompt(t *testing.T) {
	ctx := context.Background()

	estimator := &mockCalorieEstimator{
		EstimateFunc: func(ctx context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "鶏むね肉") {
				t.Errorf("prompt should contain the food name, got: %q", prompt)
			}
			if !strings.Contains(prompt, "100g") {
				t.Errorf("prompt should ask for a per-100g estimate, got: %q", prompt)
			}
			return "ok", nil
		},
	}
	uc := usecase.NewFoodLookupUsecase(&mockFoodDetector{}, estimator)

	_, err := uc.EstimateCalories(ctx, "鶏むね肉")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimator.EstimateCalls != 1 {
		t.Errorf("expected exactly one estimator call, got %d", estimator.EstimateCalls)
	}
}
