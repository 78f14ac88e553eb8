package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.xlsx")
	err := WriteXLSX(path,
		Table{
			Sheet:   "CIM",
			Headers: []string{"Current (A)", "Torque (N*m)"},
			Rows:    [][]float64{{2.7, 0}, {131, 2.41}},
		},
		Table{
			Sheet:   "Summary",
			Headers: []string{"Motors"},
			Rows:    [][]float64{{2}},
		},
	)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"CIM", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("CIM")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Current (A)", "Torque (N*m)"},
		{"2.7", "0"},
		{"131", "2.41"},
	}, rows)

	rows, err = f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Motors"}, {"2"}}, rows)
}

func TestWriteXLSXRaggedRow(t *testing.T) {
	err := WriteXLSX(filepath.Join(t.TempDir(), "bad.xlsx"), Table{
		Sheet:   "Bad",
		Headers: []string{"a", "b"},
		Rows:    [][]float64{{1}},
	})
	assert.Error(t, err)
}

func TestWriteXLSXNoTables(t *testing.T) {
	assert.Error(t, WriteXLSX(filepath.Join(t.TempDir(), "empty.xlsx")))
}
