package cropprice

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrCropNotFound  = errors.New("no price data for crop")
	ErrNotEnoughData = errors.New("not enough price history")
)

type PricePoint struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

type CropOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// History is the recent window of one crop's monthly price series.
type History struct {
	Crop       string    `json:"crop"`
	Dates      []string  `json:"dates"`
	Prices     []float64 `json:"prices"`
	DataPoints int       `json:"data_points"`
}

// Store holds per-crop monthly price series keyed by lowercased crop
// name, loaded once at boot.
type Store struct {
	series map[string][]PricePoint
}

func NewStore() *Store { return &Store{series: map[string][]PricePoint{}} }

// monthLayouts are the formats seen in the market workbook's month column.
var monthLayouts = []string{"2006-01-02", "2006-01", "01-2006", "Jan-06", "January 2006", "01/02/06"}

func parseMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadWorkbook reads one sheet per crop with month/value columns.
func LoadWorkbook(path string) (*Store, error) {
	xf, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xf.Close()

	s := NewStore()
	for _, sheet := range xf.GetSheetList() {
		rows, err := xf.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		var points []PricePoint
		for i, row := range rows {
			if i == 0 || len(row) < 2 {
				continue // header or short row
			}
			month, ok := parseMonth(row[0])
			if !ok {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
			if err != nil {
				continue
			}
			points = append(points, PricePoint{Month: month, Value: value})
		}
		if len(points) == 0 {
			continue
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Month.Before(points[j].Month) })
		s.series[strings.ToLower(sheet)] = points
	}
	if len(s.series) == 0 {
		return nil, fmt.Errorf("%s: no usable crop sheets", path)
	}
	return s, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *Store) Crops() []CropOption {
	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]CropOption, 0, len(names))
	for _, name := range names {
		out = append(out, CropOption{Value: name, Label: titleCase(name)})
	}
	return out
}

// Series returns the full ordered series for a crop.
func (s *Store) Series(crop string) ([]PricePoint, error) {
	points, ok := s.series[strings.ToLower(strings.TrimSpace(crop))]
	if !ok {
		return nil, ErrCropNotFound
	}
	return points, nil
}

// Historical returns the last n months of a crop's series.
func (s *Store) Historical(crop string, months int) (History, error) {
	points, err := s.Series(crop)
	if err != nil {
		return History{}, err
	}
	if months <= 0 {
		months = 24
	}
	cutoff := points[len(points)-1].Month.AddDate(0, -months, 0)

	h := History{Crop: strings.ToLower(strings.TrimSpace(crop))}
	for _, p := range points {
		if p.Month.Before(cutoff) {
			continue
		}
		h.Dates = append(h.Dates, p.Month.Format("2006-01-02"))
		h.Prices = append(h.Prices, p.Value)
	}
	h.DataPoints = len(h.Prices)
	return h, nil
}
