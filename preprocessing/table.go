// Package preprocessing provides feature preparation for regression models:
// a column-typed Table for mixed numeric and categorical data, and one-hot
// encoding to turn categorical columns into numeric indicator columns.
package preprocessing

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
)

// ColumnKind distinguishes the two column types a Table can hold.
type ColumnKind int

const (
	// Numeric columns hold float64 values.
	Numeric ColumnKind = iota
	// Categorical columns hold string labels.
	Categorical
)

// String returns the lowercase kind name.
func (k ColumnKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// column is one typed column. Exactly one of nums and labels is populated,
// matching kind, and its length equals the table's row count.
type column struct {
	kind   ColumnKind
	nums   []float64
	labels []string
}

func (c column) clone() column {
	out := column{kind: c.kind}
	if c.nums != nil {
		out.nums = append([]float64(nil), c.nums...)
	}
	if c.labels != nil {
		out.labels = append([]string(nil), c.labels...)
	}
	return out
}

// Table is an ordered collection of typed columns over a fixed number of
// rows. Columns are identified by position. A Table is immutable through its
// public surface: accessors return copies and transformations return new
// tables.
type Table struct {
	cols  []column
	nRows int
}

// NewTableFromRows builds a Table from row-major cells. Numeric cells may be
// float64, float32, int or int64 and are converted to float64; string cells
// form categorical columns. The kind of each column is fixed by the first
// row. A DataConversionWarning is raised once per call when any non-float64
// numeric cell was converted.
func NewTableFromRows(rows [][]interface{}) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewModelError("preprocessing.NewTableFromRows", "empty data", errors.ErrEmptyData)
	}

	nRows := len(rows)
	nCols := len(rows[0])

	for _, row := range rows {
		if len(row) != nCols {
			return nil, errors.NewDimensionError("preprocessing.NewTableFromRows", nCols, len(row), 1)
		}
	}

	cols := make([]column, nCols)
	convertedFrom := ""

	for j := 0; j < nCols; j++ {
		kind, err := cellKind(rows[0][j])
		if err != nil {
			return nil, err
		}

		col := column{kind: kind}
		if kind == Numeric {
			col.nums = make([]float64, nRows)
		} else {
			col.labels = make([]string, nRows)
		}

		for i := 0; i < nRows; i++ {
			cell := rows[i][j]
			cellK, err := cellKind(cell)
			if err != nil {
				return nil, err
			}
			if cellK != kind {
				return nil, errors.NewValidationError("rows",
					fmt.Sprintf("mixed cell types in column %d", j), fmt.Sprintf("%T", cell))
			}

			if kind == Numeric {
				v, from := toFloat64(cell)
				col.nums[i] = v
				if from != "" && convertedFrom == "" {
					convertedFrom = from
				}
			} else {
				col.labels[i] = cell.(string)
			}
		}

		cols[j] = col
	}

	if convertedFrom != "" {
		errors.Warn(errors.NewDataConversionWarning(convertedFrom, "float64", "numeric table cell"))
	}

	return &Table{cols: cols, nRows: nRows}, nil
}

// cellKind classifies a cell value or rejects its type.
func cellKind(cell interface{}) (ColumnKind, error) {
	switch cell.(type) {
	case float64, float32, int, int64:
		return Numeric, nil
	case string:
		return Categorical, nil
	default:
		return 0, errors.NewValidationError("rows", "unsupported cell type", fmt.Sprintf("%T", cell))
	}
}

// toFloat64 converts a numeric cell, reporting the source type name when a
// conversion happened.
func toFloat64(cell interface{}) (float64, string) {
	switch v := cell.(type) {
	case float64:
		return v, ""
	case float32:
		return float64(v), "float32"
	case int:
		return float64(v), "int"
	case int64:
		return float64(v), "int64"
	default:
		// cellKind filters the types before this is called
		panic(fmt.Sprintf("preprocessing: not a numeric cell: %T", cell))
	}
}

// TableFromMatrix adopts an all-numeric matrix as a Table, copying its values.
func TableFromMatrix(m mat.Matrix) *Table {
	r, c := m.Dims()
	cols := make([]column, c)
	for j := 0; j < c; j++ {
		nums := make([]float64, r)
		for i := 0; i < r; i++ {
			nums[i] = m.At(i, j)
		}
		cols[j] = column{kind: Numeric, nums: nums}
	}
	return &Table{cols: cols, nRows: r}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.nRows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Kind returns the kind of column j. It panics when j is out of range.
func (t *Table) Kind(j int) ColumnKind {
	t.checkCol(j)
	return t.cols[j].kind
}

// NumericColumn returns a copy of numeric column j. It panics when j is out
// of range or the column is categorical.
func (t *Table) NumericColumn(j int) []float64 {
	t.checkCol(j)
	if t.cols[j].kind != Numeric {
		panic("preprocessing: column is not numeric")
	}
	return append([]float64(nil), t.cols[j].nums...)
}

// CategoricalColumn returns a copy of categorical column j. It panics when j
// is out of range or the column is numeric.
func (t *Table) CategoricalColumn(j int) []string {
	t.checkCol(j)
	if t.cols[j].kind != Categorical {
		panic("preprocessing: column is not categorical")
	}
	return append([]string(nil), t.cols[j].labels...)
}

// At returns the cell at row i, column j as float64 or string.
// It panics when either index is out of range.
func (t *Table) At(i, j int) interface{} {
	t.checkCol(j)
	if i < 0 || i >= t.nRows {
		panic("preprocessing: row index out of range")
	}
	if t.cols[j].kind == Numeric {
		return t.cols[j].nums[i]
	}
	return t.cols[j].labels[i]
}

func (t *Table) checkCol(j int) {
	if j < 0 || j >= len(t.cols) {
		panic("preprocessing: column index out of range")
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	cols := make([]column, len(t.cols))
	for j, col := range t.cols {
		cols[j] = col.clone()
	}
	return &Table{cols: cols, nRows: t.nRows}
}

// Matrix converts an all-numeric table into a dense matrix. Categorical
// columns must be one-hot encoded first.
func (t *Table) Matrix() (*mat.Dense, error) {
	if len(t.cols) == 0 {
		return nil, errors.NewValueError("Table.Matrix", "table has no columns")
	}

	for j, col := range t.cols {
		if col.kind == Categorical {
			return nil, errors.NewValueError("Table.Matrix",
				fmt.Sprintf("categorical column at index %d; one-hot encode it before converting", j))
		}
	}

	out := mat.NewDense(t.nRows, len(t.cols), nil)
	for j, col := range t.cols {
		for i, v := range col.nums {
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// String returns a compact description like "Table(4×3 [numeric categorical numeric])".
func (t *Table) String() string {
	kinds := make([]string, len(t.cols))
	for j, col := range t.cols {
		kinds[j] = col.kind.String()
	}
	return fmt.Sprintf("Table(%d×%d [%s])", t.nRows, len(t.cols), strings.Join(kinds, " "))
}
