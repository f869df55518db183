package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sheet builds a raw cell matrix with a header row followed by the given
// strides. Each stride is 4 rows of 15 columns.
func sheet(strides ...[4][15]string) [][]string {
	rows := [][]string{make([]string, 15)} // header
	for _, s := range strides {
		for _, r := range s {
			row := make([]string, 15)
			copy(row, r[:])
			rows = append(rows, row)
		}
	}
	return rows
}

func stride(code, name string, fill func(s *[4][15]string)) [4][15]string {
	var s [4][15]string
	s[0][0] = code
	s[0][1] = name
	if fill != nil {
		fill(&s)
	}
	return s
}

func TestBlockWalkerSkipsNonClientStrides(t *testing.T) {
	rows := sheet(
		stride("Data", "Pagamento", nil), // stray section header
		stride("101", "Acme Ltda", nil),
		stride("", "", nil), // blank separator
		stride("202", "Beta ME", nil),
	)

	w := NewBlockWalker(rows)

	b := w.Next()
	require.NotNil(t, b)
	assert.Equal(t, "101", b.Code)
	assert.Equal(t, "Acme Ltda", b.Name)
	assert.Equal(t, 6, b.Row)

	b = w.Next()
	require.NotNil(t, b)
	assert.Equal(t, "202", b.Code)

	assert.Nil(t, w.Next())
}

func TestBlockWalkerColumnMapping(t *testing.T) {
	// amount only in spreadsheet column 14 must land in slot 13 (13th
	// salary), and column 15 in December
	rows := sheet(stride("300", "Gama SA", func(s *[4][15]string) {
		s[0][13] = "500,00" // column 14, 1-based
		s[0][14] = "645,00" // column 15
		s[2][13] = "09/dez"
		s[3][13] = "PIX"
	}))

	w := NewBlockWalker(rows)
	b := w.Next()
	require.NotNil(t, b)

	thirteenth := b.Month(13)
	assert.Equal(t, "500,00", thirteenth.RawAmount)
	assert.Equal(t, "09/dez", thirteenth.RawDate)
	assert.Equal(t, "PIX", thirteenth.RawMethod)

	december := b.Month(12)
	assert.Equal(t, "645,00", december.RawAmount)

	// nothing bled into the neighbouring slots
	assert.Empty(t, b.Month(11).RawAmount)
	assert.Empty(t, b.Month(1).RawAmount)
}

func TestBlockWalkerSlotOrderFollowsColumns(t *testing.T) {
	w := NewBlockWalker(sheet(stride("1", "X", nil)))
	b := w.Next()
	require.NotNil(t, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 12}, b.Slots())
}

func TestBlockWalkerRaggedRows(t *testing.T) {
	// excelize trims trailing empty cells; the walker must not panic on
	// short rows
	rows := [][]string{
		{"Código", "Nome"},
		{"42", "Curta Ltda", "", "100,00"},
		{},
		{"", "Data"},
		{"", "Pagamento"},
	}
	w := NewBlockWalker(rows)
	b := w.Next()
	require.NotNil(t, b)
	assert.Equal(t, "42", b.Code)
	assert.Equal(t, "100,00", b.Month(2).RawAmount) // column 4 is February
	assert.Empty(t, b.Month(12).RawAmount)
	assert.Nil(t, w.Next())
}
