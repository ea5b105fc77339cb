package preprocessing

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/ICAI-IMAT-ML/p2-4-202307302/core/model"
	"github.com/ICAI-IMAT-ML/p2-4-202307302/pkg/errors"
)

// OneHotEncode replaces the designated columns of a table with 0/1 indicator
// columns, one per distinct value, and returns the result as a new table. The
// input table is never modified.
//
// Indicator columns are ordered by ascending value and spliced in at the
// position of the column they replace, so the relative order of the remaining
// columns is preserved. Duplicate indices are encoded once. With dropFirst
// the indicator for the smallest value is omitted, which removes the exact
// collinearity among the indicators of one column.
//
// Columns of either kind can be encoded: categorical columns by label,
// numeric columns by exact value.
func OneHotEncode(t *Table, categoricalIndices []int, dropFirst bool) (_ *Table, err error) {
	defer errors.Recover(&err, "preprocessing.OneHotEncode")

	if t == nil || t.NumCols() == 0 {
		return nil, errors.NewModelError("preprocessing.OneHotEncode", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[int]bool, len(categoricalIndices))
	idxs := make([]int, 0, len(categoricalIndices))
	for _, j := range categoricalIndices {
		if j < 0 || j >= t.NumCols() {
			return nil, errors.NewValidationError("categorical_indices", "column index out of range", j)
		}
		if !seen[j] {
			seen[j] = true
			idxs = append(idxs, j)
		}
	}

	// Encoding from the highest index down keeps the lower indices valid
	// while columns are spliced in.
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))

	cols := make([]column, len(t.cols))
	for j, col := range t.cols {
		cols[j] = col.clone()
	}

	for _, j := range idxs {
		indicators := encodeColumn(cols[j], dropFirst)

		spliced := make([]column, 0, len(cols)-1+len(indicators))
		spliced = append(spliced, cols[:j]...)
		spliced = append(spliced, indicators...)
		spliced = append(spliced, cols[j+1:]...)
		cols = spliced
	}

	return &Table{cols: cols, nRows: t.nRows}, nil
}

// encodeColumn expands one column into its indicator columns, ordered by
// ascending value.
func encodeColumn(col column, dropFirst bool) []column {
	if col.kind == Categorical {
		levels := uniqueStrings(col.labels)
		if dropFirst && len(levels) > 0 {
			levels = levels[1:]
		}
		out := make([]column, len(levels))
		for k, level := range levels {
			nums := make([]float64, len(col.labels))
			for i, label := range col.labels {
				if label == level {
					nums[i] = 1
				}
			}
			out[k] = column{kind: Numeric, nums: nums}
		}
		return out
	}

	levels := uniqueFloats(col.nums)
	if dropFirst && len(levels) > 0 {
		levels = levels[1:]
	}
	out := make([]column, len(levels))
	for k, level := range levels {
		nums := make([]float64, len(col.nums))
		for i, v := range col.nums {
			if v == level {
				nums[i] = 1
			}
		}
		out[k] = column{kind: Numeric, nums: nums}
	}
	return out
}

// uniqueStrings returns the distinct values in ascending order.
func uniqueStrings(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// uniqueFloats returns the distinct values in ascending order.
func uniqueFloats(values []float64) []float64 {
	set := make(map[float64]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// OneHotEncoder learns the categories of string-valued feature columns and
// transforms rows into 0/1 indicator matrices. It follows the scikit-learn
// OneHotEncoder semantics: categories are sorted ascending per column,
// unknown categories at transform time are an error, and drop_first removes
// the first category of every column.
type OneHotEncoder struct {
	model.BaseEstimator

	// Categories holds the sorted distinct values of each input column,
	// learned by Fit.
	Categories [][]string

	// DropFirst omits the indicator of the first (smallest) category of
	// every column.
	DropFirst bool

	// NFeaturesIn is the number of input columns seen by Fit.
	NFeaturesIn int
}

// EncoderOption configures a OneHotEncoder.
type EncoderOption func(*OneHotEncoder)

// WithDropFirst sets whether the first category of every column is dropped.
func WithDropFirst(drop bool) EncoderOption {
	return func(e *OneHotEncoder) {
		e.DropFirst = drop
	}
}

// NewOneHotEncoder creates a OneHotEncoder. By default all categories are
// kept.
func NewOneHotEncoder(opts ...EncoderOption) *OneHotEncoder {
	e := &OneHotEncoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ model.Transformer = (*OneHotEncoder)(nil)

// Fit learns the distinct categories of every column of X.
func (e *OneHotEncoder) Fit(X [][]string) error {
	if len(X) == 0 || len(X[0]) == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	nCols := len(X[0])
	for _, row := range X {
		if len(row) != nCols {
			return errors.NewDimensionError("OneHotEncoder.Fit", nCols, len(row), 1)
		}
	}

	cats := make([][]string, nCols)
	colBuf := make([]string, len(X))
	for j := 0; j < nCols; j++ {
		for i, row := range X {
			colBuf[i] = row[j]
		}
		cats[j] = uniqueStrings(colBuf)
	}

	e.Categories = cats
	e.NFeaturesIn = nCols
	e.SetFitted()
	return nil
}

// Transform encodes X into an indicator matrix using the fitted categories.
// Values not seen during Fit are an error.
func (e *OneHotEncoder) Transform(X [][]string) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "OneHotEncoder.Transform")

	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	if len(X) == 0 {
		return nil, errors.NewModelError("OneHotEncoder.Transform", "empty data", errors.ErrEmptyData)
	}
	for _, row := range X {
		if len(row) != e.NFeaturesIn {
			return nil, errors.NewDimensionError("OneHotEncoder.Transform", e.NFeaturesIn, len(row), 1)
		}
	}

	width := e.NFeaturesOut()
	if width == 0 {
		return nil, errors.NewValueError("OneHotEncoder.Transform",
			"no output features: every column has a single category and drop_first is set")
	}

	// Column offsets of each input column's indicator block.
	offsets := make([]int, e.NFeaturesIn)
	pos := 0
	for j, cats := range e.Categories {
		offsets[j] = pos
		pos += e.featuresOut(len(cats))
	}

	out := mat.NewDense(len(X), width, nil)
	for i, row := range X {
		for j, val := range row {
			cats := e.Categories[j]
			k := sort.SearchStrings(cats, val)
			if k == len(cats) || cats[k] != val {
				return nil, errors.NewValueError("OneHotEncoder.Transform",
					fmt.Sprintf("unknown category %q in column %d", val, j))
			}
			if e.DropFirst {
				if k == 0 {
					continue
				}
				k--
			}
			out.Set(i, offsets[j]+k, 1)
		}
	}
	return out, nil
}

// FitTransform fits the encoder to X and transforms it in one call.
func (e *OneHotEncoder) FitTransform(X [][]string) (mat.Matrix, error) {
	if err := e.Fit(X); err != nil {
		return nil, err
	}
	return e.Transform(X)
}

// featuresOut is the number of indicator columns produced for a column with
// nCats categories.
func (e *OneHotEncoder) featuresOut(nCats int) int {
	if e.DropFirst && nCats > 0 {
		return nCats - 1
	}
	return nCats
}

// NFeaturesOut returns the total number of indicator columns Transform will
// produce. Before Fit it returns 0.
func (e *OneHotEncoder) NFeaturesOut() int {
	total := 0
	for _, cats := range e.Categories {
		total += e.featuresOut(len(cats))
	}
	return total
}

// GetFeatureNamesOut returns the output column names in transform order,
// formed as "<feature>_<category>". When inputFeatures is nil or does not
// match the fitted column count, positional names x0, x1, ... are used.
// It returns nil when the encoder is not fitted.
func (e *OneHotEncoder) GetFeatureNamesOut(inputFeatures []string) []string {
	if !e.IsFitted() {
		return nil
	}

	names := make([]string, 0, e.NFeaturesOut())
	for j, cats := range e.Categories {
		prefix := fmt.Sprintf("x%d", j)
		if len(inputFeatures) == e.NFeaturesIn {
			prefix = inputFeatures[j]
		}
		if e.DropFirst && len(cats) > 0 {
			cats = cats[1:]
		}
		for _, cat := range cats {
			names = append(names, prefix+"_"+cat)
		}
	}
	return names
}

// GetParams returns the encoder hyperparameters.
func (e *OneHotEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"drop_first": e.DropFirst,
	}
}

// String returns a string representation of the encoder.
func (e *OneHotEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("OneHotEncoder(drop_first=%t, fitted=false)", e.DropFirst)
	}
	return fmt.Sprintf("OneHotEncoder(drop_first=%t, fitted=true, n_features_in=%d, n_features_out=%d)",
		e.DropFirst, e.NFeaturesIn, e.NFeaturesOut())
}
