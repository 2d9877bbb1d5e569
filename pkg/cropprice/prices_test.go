package cropprice

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a small two-crop workbook in the shape the
// market data file uses: one sheet per crop, month and value columns.
func writeWorkbook(t *testing.T, months int) string {
	t.Helper()
	xf := excelize.NewFile()
	defer xf.Close()

	sheets := map[string]float64{"coffee": 250, "pepper": 520}
	first := true
	for crop, base := range sheets {
		if first {
			require.NoError(t, xf.SetSheetName("Sheet1", crop))
			first = false
		} else {
			_, err := xf.NewSheet(crop)
			require.NoError(t, err)
		}
		require.NoError(t, xf.SetCellValue(crop, "A1", "Month"))
		require.NoError(t, xf.SetCellValue(crop, "B1", "Price"))
		for i := 0; i < months; i++ {
			row := i + 2
			require.NoError(t, xf.SetCellValue(crop,
				fmt.Sprintf("A%d", row), fmt.Sprintf("2024-%02d-01", i%12+1)))
			require.NoError(t, xf.SetCellValue(crop,
				fmt.Sprintf("B%d", row), base+float64(i)*10))
		}
	}

	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, xf.SaveAs(path))
	return path
}

func TestLoadWorkbookListsCrops(t *testing.T) {
	store, err := LoadWorkbook(writeWorkbook(t, 6))
	require.NoError(t, err)

	crops := store.Crops()
	require.Len(t, crops, 2)
	assert.Equal(t, CropOption{Value: "coffee", Label: "Coffee"}, crops[0])
	assert.Equal(t, CropOption{Value: "pepper", Label: "Pepper"}, crops[1])
}

func TestLoadWorkbookRejectsEmptyFile(t *testing.T) {
	xf := excelize.NewFile()
	defer xf.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, xf.SaveAs(path))

	_, err := LoadWorkbook(path)
	require.Error(t, err)
}

func TestHistoricalWindowsSeries(t *testing.T) {
	store, err := LoadWorkbook(writeWorkbook(t, 8))
	require.NoError(t, err)

	h, err := store.Historical("Coffee", 3)
	require.NoError(t, err)
	assert.Equal(t, "coffee", h.Crop)
	// cutoff is inclusive of the month exactly n back from the latest
	require.Len(t, h.Prices, 4)
	assert.Equal(t, h.DataPoints, len(h.Prices))
	assert.Equal(t, "2024-08-01", h.Dates[len(h.Dates)-1])
	assert.Equal(t, 320.0, h.Prices[len(h.Prices)-1])
}

func TestHistoricalUnknownCrop(t *testing.T) {
	store, err := LoadWorkbook(writeWorkbook(t, 6))
	require.NoError(t, err)

	_, err = store.Historical("areca", 12)
	assert.ErrorIs(t, err, ErrCropNotFound)
}
