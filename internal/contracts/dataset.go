package contracts

// Dataset is the in-memory form of a trial table.
// ⭐ SSOT: Loader → Aggregator 데이터 전달
//
// Rows are configurations (Params[i], e.g. sample count), columns are
// independent trials (Labels[j]). Values[i][j] is the outcome of trial j
// at configuration i; NaN marks a missing cell.
type Dataset struct {
	Source string      `json:"source"` // file path or URL
	Labels []string    `json:"labels"`
	Params []float64   `json:"params"`
	Values [][]float64 `json:"-"`
}

// Rows returns the number of configuration rows
func (d *Dataset) Rows() int {
	return len(d.Params)
}

// Cols returns the number of trial columns
func (d *Dataset) Cols() int {
	return len(d.Labels)
}

// Column extracts trial column j as a series over all configuration rows
func (d *Dataset) Column(j int) []float64 {
	col := make([]float64, len(d.Values))
	for i, row := range d.Values {
		col[i] = row[j]
	}
	return col
}
