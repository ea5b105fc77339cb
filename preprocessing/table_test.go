package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
)

func mixedRows() [][]interface{} {
	return [][]interface{}{
		{120.5, "urban", 3.0},
		{85.0, "rural", 2.0},
		{99.9, "urban", 4.0},
		{60.25, "suburban", 1.0},
	}
}

func TestNewTableFromRows(t *testing.T) {
	table, err := NewTableFromRows(mixedRows())
	if err != nil {
		t.Fatalf("NewTableFromRows failed: %v", err)
	}

	if table.NumRows() != 4 {
		t.Errorf("NumRows = %d, want 4", table.NumRows())
	}
	if table.NumCols() != 3 {
		t.Errorf("NumCols = %d, want 3", table.NumCols())
	}

	wantKinds := []ColumnKind{Numeric, Categorical, Numeric}
	for j, want := range wantKinds {
		if got := table.Kind(j); got != want {
			t.Errorf("Kind(%d) = %v, want %v", j, got, want)
		}
	}

	nums := table.NumericColumn(0)
	wantNums := []float64{120.5, 85.0, 99.9, 60.25}
	for i, want := range wantNums {
		if math.Abs(nums[i]-want) > 1e-12 {
			t.Errorf("NumericColumn(0)[%d] = %v, want %v", i, nums[i], want)
		}
	}

	labels := table.CategoricalColumn(1)
	wantLabels := []string{"urban", "rural", "urban", "suburban"}
	for i, want := range wantLabels {
		if labels[i] != want {
			t.Errorf("CategoricalColumn(1)[%d] = %q, want %q", i, labels[i], want)
		}
	}

	if got := table.At(1, 1); got != "rural" {
		t.Errorf("At(1,1) = %v, want rural", got)
	}
	if got := table.At(2, 2); got != 4.0 {
		t.Errorf("At(2,2) = %v, want 4.0", got)
	}
}

func TestNewTableFromRowsConversion(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) {
		warnings = append(warnings, w)
	})
	defer errors.SetWarningHandler(nil)

	rows := [][]interface{}{
		{int(3), float32(1.5), int64(7)},
		{int(4), float32(2.5), int64(8)},
	}
	table, err := NewTableFromRows(rows)
	if err != nil {
		t.Fatalf("NewTableFromRows failed: %v", err)
	}

	want := [][]float64{{3, 1.5, 7}, {4, 2.5, 8}}
	for j := 0; j < 3; j++ {
		col := table.NumericColumn(j)
		for i := 0; i < 2; i++ {
			if col[i] != want[i][j] {
				t.Errorf("column %d row %d = %v, want %v", j, i, col[i], want[i][j])
			}
		}
	}

	if len(warnings) != 1 {
		t.Fatalf("expected exactly 1 conversion warning, got %d", len(warnings))
	}
	var conv *errors.DataConversionWarning
	if !errors.As(warnings[0], &conv) {
		t.Fatalf("warning is not a DataConversionWarning: %v", warnings[0])
	}
	if conv.ToType != "float64" {
		t.Errorf("ToType = %q, want float64", conv.ToType)
	}
}

func TestNewTableFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "empty rows",
			rows: [][]interface{}{},
		},
		{
			name: "empty row",
			rows: [][]interface{}{{}},
		},
		{
			name: "ragged rows",
			rows: [][]interface{}{{1.0, "a"}, {2.0}},
		},
		{
			name: "mixed column types",
			rows: [][]interface{}{{1.0, "a"}, {"oops", "b"}},
		},
		{
			name: "unsupported cell type",
			rows: [][]interface{}{{true, "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTableFromRows(tt.rows); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewTableFromRowsTypedErrors(t *testing.T) {
	_, err := NewTableFromRows([][]interface{}{})
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("empty input: expected ErrEmptyData, got %v", err)
	}

	_, err = NewTableFromRows([][]interface{}{{1.0, 2.0}, {3.0}})
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("ragged input: expected DimensionError, got %v", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 1 {
		t.Errorf("DimensionError = expected %d got %d, want expected 2 got 1", dimErr.Expected, dimErr.Got)
	}

	_, err = NewTableFromRows([][]interface{}{{1.0}, {"a"}})
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("mixed input: expected ValidationError, got %v", err)
	}
	if valErr.ParamName != "rows" {
		t.Errorf("ParamName = %q, want rows", valErr.ParamName)
	}
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	table, err := NewTableFromRows(mixedRows())
	if err != nil {
		t.Fatalf("NewTableFromRows failed: %v", err)
	}

	nums := table.NumericColumn(0)
	nums[0] = -1
	if got := table.At(0, 0).(float64); got != 120.5 {
		t.Errorf("table mutated through NumericColumn copy: At(0,0) = %v", got)
	}

	labels := table.CategoricalColumn(1)
	labels[0] = "mutated"
	if got := table.At(0, 1).(string); got != "urban" {
		t.Errorf("table mutated through CategoricalColumn copy: At(0,1) = %v", got)
	}
}

func TestTableMatrix(t *testing.T) {
	t.Run("all numeric", func(t *testing.T) {
		rows := [][]interface{}{
			{1.0, 2.0},
			{3.0, 4.0},
		}
		table, err := NewTableFromRows(rows)
		if err != nil {
			t.Fatalf("NewTableFromRows failed: %v", err)
		}

		m, err := table.Matrix()
		if err != nil {
			t.Fatalf("Matrix failed: %v", err)
		}
		want := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		if !mat.Equal(m, want) {
			t.Errorf("Matrix = %v, want %v", mat.Formatted(m), mat.Formatted(want))
		}
	})

	t.Run("categorical column remains", func(t *testing.T) {
		table, err := NewTableFromRows(mixedRows())
		if err != nil {
			t.Fatalf("NewTableFromRows failed: %v", err)
		}
		if _, err := table.Matrix(); err == nil {
			t.Error("expected error for categorical column, got nil")
		}
	})

	t.Run("after encoding", func(t *testing.T) {
		table, err := NewTableFromRows(mixedRows())
		if err != nil {
			t.Fatalf("NewTableFromRows failed: %v", err)
		}
		encoded, err := OneHotEncode(table, []int{1}, false)
		if err != nil {
			t.Fatalf("OneHotEncode failed: %v", err)
		}
		m, err := encoded.Matrix()
		if err != nil {
			t.Fatalf("Matrix after encoding failed: %v", err)
		}
		r, c := m.Dims()
		if r != 4 || c != 5 {
			t.Errorf("Dims = (%d, %d), want (4, 5)", r, c)
		}
	})
}

func TestTableFromMatrix(t *testing.T) {
	src := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	table := TableFromMatrix(src)

	if table.NumRows() != 3 || table.NumCols() != 2 {
		t.Fatalf("dims = (%d, %d), want (3, 2)", table.NumRows(), table.NumCols())
	}
	for j := 0; j < 2; j++ {
		if table.Kind(j) != Numeric {
			t.Errorf("Kind(%d) = %v, want Numeric", j, table.Kind(j))
		}
	}

	back, err := table.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	if !mat.Equal(back, src) {
		t.Errorf("round trip mismatch: got %v", mat.Formatted(back))
	}

	// The table must hold its own copy.
	src.Set(0, 0, 99)
	if got := table.At(0, 0).(float64); got != 1 {
		t.Errorf("table aliases the source matrix: At(0,0) = %v", got)
	}
}

func TestTableClone(t *testing.T) {
	table, err := NewTableFromRows(mixedRows())
	if err != nil {
		t.Fatalf("NewTableFromRows failed: %v", err)
	}

	clone := table.Clone()
	if clone.NumRows() != table.NumRows() || clone.NumCols() != table.NumCols() {
		t.Fatalf("clone dims = (%d, %d), want (%d, %d)",
			clone.NumRows(), clone.NumCols(), table.NumRows(), table.NumCols())
	}
	for j := 0; j < table.NumCols(); j++ {
		if clone.Kind(j) != table.Kind(j) {
			t.Errorf("clone Kind(%d) = %v, want %v", j, clone.Kind(j), table.Kind(j))
		}
	}
	for i := 0; i < table.NumRows(); i++ {
		for j := 0; j < table.NumCols(); j++ {
			if clone.At(i, j) != table.At(i, j) {
				t.Errorf("clone At(%d,%d) = %v, want %v", i, j, clone.At(i, j), table.At(i, j))
			}
		}
	}
}

func TestTableString(t *testing.T) {
	table, err := NewTableFromRows(mixedRows())
	if err != nil {
		t.Fatalf("NewTableFromRows failed: %v", err)
	}
	want := "Table(4×3 [numeric categorical numeric])"
	if got := table.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestColumnKindString(t *testing.T) {
	if Numeric.String() != "numeric" {
		t.Errorf("Numeric.String() = %q", Numeric.String())
	}
	if Categorical.String() != "categorical" {
		t.Errorf("Categorical.String() = %q", Categorical.String())
	}
	if ColumnKind(99).String() != "unknown" {
		t.Errorf("ColumnKind(99).String() = %q", ColumnKind(99).String())
	}
}
