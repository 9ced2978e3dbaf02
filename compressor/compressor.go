// Package compressor shrinks sparse two-dimensional tables such as the transition table of a DFA.
package compressor

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// OriginalTable is a dense table stored in row-major order.
type OriginalTable struct {
	entries  []int
	rowCount int
	colCount int
}

func NewOriginalTable(entries []int, colCount int) (*OriginalTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("a table needs at least one entry")
	}
	if colCount <= 0 {
		return nil, fmt.Errorf("a table needs at least one column: %v", colCount)
	}
	if len(entries)%colCount != 0 {
		return nil, fmt.Errorf("the entries don't fill the last row; entries: %v, columns: %v", len(entries), colCount)
	}

	return &OriginalTable{
		entries:  entries,
		rowCount: len(entries) / colCount,
		colCount: colCount,
	}, nil
}

func (t *OriginalTable) row(row int) []int {
	return t.entries[row*t.colCount : (row+1)*t.colCount]
}

type Compressor interface {
	Compress(orig *OriginalTable) error
	Lookup(row, col int) (int, error)
	OriginalTableSize() (int, int)
}

var (
	_ Compressor = &UniqueEntriesTable{}
	_ Compressor = &RowDisplacementTable{}
	_ Compressor = &Table{}
)

func checkRange(c Compressor, row, col int) error {
	rowCount, colCount := c.OriginalTableSize()
	if row < 0 || row >= rowCount || col < 0 || col >= colCount {
		return fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return nil
}

// UniqueEntriesTable shares one copy among identical rows.
type UniqueEntriesTable struct {
	UniqueEntries    []int
	RowNums          []int
	OriginalRowCount int
	OriginalColCount int
}

func NewUniqueEntriesTable() *UniqueEntriesTable {
	return &UniqueEntriesTable{}
}

func (tab *UniqueEntriesTable) Lookup(row, col int) (int, error) {
	if err := checkRange(tab, row, col); err != nil {
		return 0, err
	}
	return tab.UniqueEntries[tab.RowNums[row]*tab.OriginalColCount+col], nil
}

func (tab *UniqueEntriesTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

func (tab *UniqueEntriesTable) Compress(orig *OriginalTable) error {
	var uniqueEntries []int
	rowNums := make([]int, orig.rowCount)
	key2RowNum := map[string]int{}
	buf := make([]byte, 0, orig.colCount*binary.MaxVarintLen64)
	for row := 0; row < orig.rowCount; row++ {
		entries := orig.row(row)

		buf = buf[:0]
		for _, v := range entries {
			buf = binary.AppendVarint(buf, int64(v))
		}
		key := string(buf)

		rowNum, ok := key2RowNum[key]
		if !ok {
			rowNum = len(key2RowNum)
			key2RowNum[key] = rowNum
			uniqueEntries = append(uniqueEntries, entries...)
		}
		rowNums[row] = rowNum
	}

	tab.UniqueEntries = uniqueEntries
	tab.RowNums = rowNums
	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount

	return nil
}

// ForbiddenValue marks a slot of a RowDisplacementTable that no row owns.
const ForbiddenValue = -1

// RowDisplacementTable overlays the rows on a single array, shifting each row so that its non-empty
// entries land on free slots. Bounds records the row owning each slot.
type RowDisplacementTable struct {
	OriginalRowCount int
	OriginalColCount int
	EmptyValue       int
	Entries          []int
	Bounds           []int
	RowDisplacement  []int
}

func NewRowDisplacementTable(emptyValue int) *RowDisplacementTable {
	return &RowDisplacementTable{
		EmptyValue: emptyValue,
	}
}

func (tab *RowDisplacementTable) Lookup(row int, col int) (int, error) {
	if err := checkRange(tab, row, col); err != nil {
		return tab.EmptyValue, err
	}
	d := tab.RowDisplacement[row]
	if tab.Bounds[d+col] != row {
		return tab.EmptyValue, nil
	}
	return tab.Entries[d+col], nil
}

func (tab *RowDisplacementTable) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

type rowInfo struct {
	rowNum      int
	nonEmptyCol []int
}

func (tab *RowDisplacementTable) Compress(orig *OriginalTable) error {
	rows := make([]*rowInfo, orig.rowCount)
	for row := range rows {
		info := &rowInfo{
			rowNum: row,
		}
		for col, v := range orig.row(row) {
			if v != tab.EmptyValue {
				info.nonEmptyCol = append(info.nonEmptyCol, col)
			}
		}
		rows[row] = info
	}
	// Placing dense rows first leaves the small gaps to sparse rows.
	sort.SliceStable(rows, func(i int, j int) bool {
		return len(rows[i].nonEmptyCol) > len(rows[j].nonEmptyCol)
	})

	size := len(orig.entries)
	entries := make([]int, size)
	bounds := make([]int, size)
	for i := 0; i < size; i++ {
		entries[i] = tab.EmptyValue
		bounds[i] = ForbiddenValue
	}

	fits := func(d int, cols []int) bool {
		for _, col := range cols {
			if bounds[d+col] != ForbiddenValue {
				return false
			}
		}
		return true
	}

	rowDisplacement := make([]int, orig.rowCount)
	bottom := orig.colCount
	d := 0
	for _, info := range rows {
		if len(info.nonEmptyCol) == 0 {
			continue
		}
		for !fits(d, info.nonEmptyCol) {
			d++
		}
		rowDisplacement[info.rowNum] = d
		for _, col := range info.nonEmptyCol {
			entries[d+col] = orig.entries[info.rowNum*orig.colCount+col]
			bounds[d+col] = info.rowNum
		}
		bottom = d + orig.colCount
		d++
	}

	tab.OriginalRowCount = orig.rowCount
	tab.OriginalColCount = orig.colCount
	tab.Entries = entries[:bottom]
	tab.Bounds = bounds[:bottom]
	tab.RowDisplacement = rowDisplacement

	return nil
}

// Table applies both compressions: it first shares identical rows and then overlays the unique rows.
type Table struct {
	rowNums *UniqueEntriesTable
	rows    *RowDisplacementTable
}

func NewTable(emptyValue int) *Table {
	return &Table{
		rowNums: NewUniqueEntriesTable(),
		rows:    NewRowDisplacementTable(emptyValue),
	}
}

func (tab *Table) Compress(orig *OriginalTable) error {
	err := tab.rowNums.Compress(orig)
	if err != nil {
		return err
	}
	unique, err := NewOriginalTable(tab.rowNums.UniqueEntries, orig.colCount)
	if err != nil {
		return err
	}
	return tab.rows.Compress(unique)
}

func (tab *Table) Lookup(row, col int) (int, error) {
	if err := checkRange(tab, row, col); err != nil {
		return tab.rows.EmptyValue, err
	}
	return tab.rows.Lookup(tab.rowNums.RowNums[row], col)
}

func (tab *Table) OriginalTableSize() (int, int) {
	return tab.rowNums.OriginalTableSize()
}

// Size returns the number of slots the compressed table occupies.
func (tab *Table) Size() int {
	return len(tab.rowNums.RowNums) + len(tab.rows.Entries) + len(tab.rows.Bounds) + len(tab.rows.RowDisplacement)
}
