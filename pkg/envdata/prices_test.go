package envdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPriceTableDefaults(t *testing.T) {
	table, err := LoadPriceTable("")
	require.NoError(t, err)
	assert.Equal(t, 20.0, table["Maize"].AvgInr)
	assert.Equal(t, 100.0, table["Turmeric"].AvgInr)
}

func TestLoadPriceTableCSVOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prices.csv")
	csv := "crop,min,max,avg\nMaize,18,26,22\nJackfruit,30,50,40\nbroken,x,y,z\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	table, err := LoadPriceTable(path)
	require.NoError(t, err)

	// overridden, added, and untouched entries
	assert.Equal(t, 22.0, table["Maize"].AvgInr)
	assert.Equal(t, 40.0, table["Jackfruit"].AvgInr)
	assert.Equal(t, 25.0, table["Sorghum"].AvgInr)
	// unparsable rows are skipped, not fatal
	_, ok := table["broken"]
	assert.False(t, ok)
}

func TestLoadPriceTableUnsupportedExtension(t *testing.T) {
	_, err := LoadPriceTable("prices.yaml")
	assert.Error(t, err)
}

func TestPricesNeverMissing(t *testing.T) {
	table, err := LoadPriceTable("")
	require.NoError(t, err)

	out := table.Prices([]string{"Maize", "Dragonfruit"})
	require.Len(t, out, 2)
	assert.Equal(t, 20.0, out["Maize"].AvgInr)
	assert.Equal(t, genericPrice, out["Dragonfruit"])
}
