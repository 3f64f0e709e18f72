package forecast

import (
	"errors"
	"fmt"

	"github.com/sartorproj/goarima/autoarima"
	"github.com/sartorproj/goarima/timeseries"

	"github.com/katiamach/weather-forecast-web/internal/model"
)

type searchFunc func(series *timeseries.Series, cfg *autoarima.Config) (*autoarima.Result, error)

// AutoARIMA is a Fitter backed by stepwise non-seasonal auto ARIMA.
type AutoARIMA struct {
	search searchFunc
}

// Fit selects the order minimising the information criterion and fits it.
// A series without variance gets a (0, 0, 0) model repeating its value, since
// no candidate order can be fitted to it.
func (a AutoARIMA) Fit(series *timeseries.Series) (m Model, err error) {
	if series == nil || series.Len() == 0 {
		return nil, errors.New("empty series")
	}
	if series.Min() == series.Max() {
		return constantModel(series.Values[0]), nil
	}

	search := a.search
	if search == nil {
		search = autoarima.AutoARIMA
	}

	cfg := autoarima.DefaultConfig()
	cfg.Seasonal = false
	cfg.Stepwise = true

	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("order search panicked: %v", r)
		}
	}()

	res, err := search(series, cfg)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Model == nil {
		return nil, errors.New("no candidate order could be fitted")
	}

	return &arimaModel{
		order:   model.Order{P: res.P, D: res.D, Q: res.Q},
		predict: res.Predict,
	}, nil
}

type arimaModel struct {
	order   model.Order
	predict func(steps int) ([]float64, error)
}

func constantModel(v float64) *arimaModel {
	return &arimaModel{
		predict: func(steps int) ([]float64, error) {
			out := make([]float64, steps)
			for i := range out {
				out[i] = v
			}
			return out, nil
		},
	}
}

func (m *arimaModel) Order() model.Order {
	return m.order
}

func (m *arimaModel) Predict(steps int) ([]float64, error) {
	return m.predict(steps)
}
