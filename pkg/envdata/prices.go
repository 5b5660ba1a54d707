package envdata

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"raitha/pkg/recommend/types"
)

// PriceTable maps crop name to a market price band (INR/kg). This is a
// synthesized table, not a live market feed; an optional override file can
// replace entries at startup.
type PriceTable map[string]types.CropPrice

var defaultPrices = PriceTable{
	"Maize":         {MinInr: 16, MaxInr: 24, AvgInr: 20},
	"Sorghum":       {MinInr: 20, MaxInr: 30, AvgInr: 25},
	"Finger Millet": {MinInr: 28, MaxInr: 40, AvgInr: 34},
	"Paddy":         {MinInr: 18, MaxInr: 26, AvgInr: 22},
	"Cotton":        {MinInr: 55, MaxInr: 75, AvgInr: 65},
	"Cowpea":        {MinInr: 40, MaxInr: 60, AvgInr: 50},
	"Green Gram":    {MinInr: 60, MaxInr: 90, AvgInr: 75},
	"Groundnut":     {MinInr: 45, MaxInr: 65, AvgInr: 55},
	"Pigeon Pea":    {MinInr: 55, MaxInr: 80, AvgInr: 68},
	"Turmeric":      {MinInr: 80, MaxInr: 120, AvgInr: 100},
	"Ginger":        {MinInr: 60, MaxInr: 110, AvgInr: 85},
	"Lemongrass":    {MinInr: 25, MaxInr: 45, AvgInr: 35},
	"Holy Basil":    {MinInr: 30, MaxInr: 50, AvgInr: 40},
	"Mango":         {MinInr: 40, MaxInr: 80, AvgInr: 60},
}

var genericPrice = types.CropPrice{MinInr: 20, MaxInr: 30, AvgInr: 25}

// LoadPriceTable starts from the built-in table and overlays rows from an
// optional CSV or XLSX file with columns crop,min,max,avg. A missing path
// returns the defaults unchanged.
func LoadPriceTable(path string) (PriceTable, error) {
	table := PriceTable{}
	for k, v := range defaultPrices {
		table[k] = v
	}
	if path == "" {
		return table, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		if err := loadPricesCSV(table, path); err != nil {
			return nil, err
		}
	case ".xlsx":
		if err := loadPricesXLSX(table, path); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("price table: unsupported file type " + path)
	}
	return table, nil
}

func loadPricesCSV(table PriceTable, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	if _, err := cr.Read(); err != nil { // header
		return err
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if p, ok := parsePriceRow(rec); ok {
			table[strings.TrimSpace(rec[0])] = p
		}
	}
	return nil
}

func loadPricesXLSX(table PriceTable, path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows(x.GetSheetName(0))
	if err != nil {
		return err
	}
	for i, rec := range rows {
		if i == 0 { // header
			continue
		}
		if p, ok := parsePriceRow(rec); ok {
			table[strings.TrimSpace(rec[0])] = p
		}
	}
	return nil
}

func parsePriceRow(rec []string) (types.CropPrice, bool) {
	if len(rec) < 4 || strings.TrimSpace(rec[0]) == "" {
		return types.CropPrice{}, false
	}
	min, err1 := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	max, err2 := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	avg, err3 := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return types.CropPrice{}, false
	}
	return types.CropPrice{MinInr: min, MaxInr: max, AvgInr: avg}, true
}

// Prices returns a band for every requested crop; unknown crops get the
// generic band so callers never see a missing entry.
func (t PriceTable) Prices(cropNames []string) map[string]types.CropPrice {
	out := make(map[string]types.CropPrice, len(cropNames))
	for _, name := range cropNames {
		if p, ok := t[name]; ok {
			out[name] = p
		} else {
			out[name] = genericPrice
		}
	}
	return out
}
