package cropprice

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type Forecast struct {
	Crop                string               `json:"crop"`
	Predictions         []float64            `json:"predictions"`
	Dates               []string             `json:"dates"`
	ConfidenceIntervals []ConfidenceInterval `json:"confidence_intervals"`
}

// Predictor forecasts future monthly prices from a crop's series.
type Predictor interface {
	Predict(crop string, series []PricePoint, months int) (Forecast, error)
}

type mockPredictor struct{}

// NewMockPredictor returns the development-mode forecaster: straight
// trend extrapolation over the recent series instead of the trained
// regression ensemble, with the same ±20% confidence band.
func NewMockPredictor() Predictor { return &mockPredictor{} }

// trendWindow bounds how many trailing points feed the slope estimate.
const trendWindow = 12

func (m *mockPredictor) Predict(crop string, series []PricePoint, months int) (Forecast, error) {
	if len(series) < 2 {
		return Forecast{}, ErrNotEnoughData
	}
	if months <= 0 {
		months = 3
	}

	recent := series
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}
	slope := (recent[len(recent)-1].Value - recent[0].Value) / float64(len(recent)-1)

	last := series[len(series)-1]
	f := Forecast{Crop: crop}
	for i := 1; i <= months; i++ {
		price := last.Value + slope*float64(i)
		if price < 0 {
			price = 0
		}
		margin := price * 0.2
		lower := price - margin
		if lower < 0 {
			lower = 0
		}
		f.Predictions = append(f.Predictions, price)
		f.Dates = append(f.Dates, last.Month.AddDate(0, i, 0).Format("2006-01-02"))
		f.ConfidenceIntervals = append(f.ConfidenceIntervals, ConfidenceInterval{Lower: lower, Upper: price + margin})
	}
	return f, nil
}
