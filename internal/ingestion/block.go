package ingestion

import (
	"strconv"
	"strings"
)

// The yearly sheets lay out one client per 4-row stride starting at row 2
// (row 1 is the header):
//
//	row+0  code | name | amounts per month column
//	row+1  merged name continuation, ignored
//	row+2  payment dates per month column
//	row+3  payment methods per month column
//
// Month columns run C..O but NOT in calendar order: Jan..Nov occupy columns
// 3..13, column 14 is the 13th-salary charge and December sits last in
// column 15. Historical sheets depend on this exact mapping.
var columnMonthSlots = map[int]int{
	3:  1,
	4:  2,
	5:  3,
	6:  4,
	7:  5,
	8:  6,
	9:  7,
	10: 8,
	11: 9,
	12: 10,
	13: 11,
	14: 13, // 13th salary
	15: 12, // December
}

const (
	headerRows  = 1
	strideRows  = 4
	codeColumn  = 1
	nameColumn  = 2
	firstColumn = 3
	lastColumn  = 15
)

// MonthCell holds the three raw cells of one month column in a stride.
type MonthCell struct {
	RawAmount string
	RawDate   string
	RawMethod string
}

// ClientBlock is one client's full-year data extracted from a stride.
type ClientBlock struct {
	Row    int // 1-based sheet row the stride starts at
	Code   string
	Name   string
	months map[int]MonthCell
}

// Month returns the raw cells for a month slot (1-12, or 13 for the
// 13th-salary charge).
func (b *ClientBlock) Month(slot int) MonthCell {
	return b.months[slot]
}

// Slots lists the month slots present in a block in column order.
func (b *ClientBlock) Slots() []int {
	slots := make([]int, 0, len(columnMonthSlots))
	for col := firstColumn; col <= lastColumn; col++ {
		slots = append(slots, columnMonthSlots[col])
	}
	return slots
}

// BlockWalker iterates a worksheet in 4-row strides, emitting one
// ClientBlock per client and silently skipping the merged header/footer
// strides that human editors leave behind.
type BlockWalker struct {
	rows    [][]string
	row     int
	skipped int
}

// NewBlockWalker wraps the raw rows of a worksheet (as returned by
// LoadWorkbookSheet). Data begins after the single header row.
func NewBlockWalker(rows [][]string) *BlockWalker {
	return &BlockWalker{rows: rows, row: headerRows + 1}
}

// Next advances to the next valid client stride. It returns nil when the
// sheet is exhausted. A stride whose code cell is empty or not an integer is
// skipped, but the stride pointer still advances by 4 rows, matching how the
// sheets interleave section headers with client data.
func (w *BlockWalker) Next() *ClientBlock {
	for w.row <= len(w.rows) {
		start := w.row
		w.row += strideRows

		code := strings.TrimSpace(w.cell(start, codeColumn))
		name := strings.TrimSpace(w.cell(start, nameColumn))
		if code == "" || name == "" {
			w.skipped++
			continue
		}
		if _, err := strconv.Atoi(code); err != nil {
			w.skipped++
			continue
		}

		months := make(map[int]MonthCell, len(columnMonthSlots))
		for col, slot := range columnMonthSlots {
			months[slot] = MonthCell{
				RawAmount: w.cell(start, col),
				RawDate:   w.cell(start+2, col),
				RawMethod: w.cell(start+3, col),
			}
		}
		return &ClientBlock{Row: start, Code: code, Name: name, months: months}
	}
	return nil
}

// Skipped reports how many strides were excluded for not carrying a client
// code. Excluded strides are not errors; the count only feeds the run tally.
func (w *BlockWalker) Skipped() int {
	return w.skipped
}

// cell reads a 1-based (row, column) position, tolerating the ragged row
// lengths excelize produces for trailing empty cells.
func (w *BlockWalker) cell(row, col int) string {
	if row < 1 || row > len(w.rows) {
		return ""
	}
	r := w.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}
