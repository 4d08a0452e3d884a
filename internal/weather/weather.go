// Package weather provides the conditions shown in the display header.
// Only a fixed mock provider exists; a real forecast service would satisfy
// the same Provider interface.
package weather

import "context"

type Current struct {
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

type Day struct {
	Day       string `json:"day"`
	Temp      int    `json:"temp"`
	Condition string `json:"condition"`
}

type Report struct {
	City     string  `json:"city"`
	Current  Current `json:"current"`
	Forecast []Day   `json:"forecast"`
}

type Provider interface {
	Report(ctx context.Context, city string) (*Report, error)
}

// MockProvider returns the same summer forecast for every city.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (MockProvider) Report(_ context.Context, city string) (*Report, error) {
	return &Report{
		City: city,
		Current: Current{
			Temp:      32,
			Condition: "sunny",
			Icon:      "☀️",
		},
		Forecast: []Day{
			{Day: "GIO", Temp: 35, Condition: "sunny"},
			{Day: "VEN", Temp: 36, Condition: "sunny"},
			{Day: "SAB", Temp: 35, Condition: "sunny"},
			{Day: "DOM", Temp: 35, Condition: "partly_cloudy"},
			{Day: "LUN", Temp: 35, Condition: "sunny"},
			{Day: "MAR", Temp: 34, Condition: "sunny"},
		},
	}, nil
}
