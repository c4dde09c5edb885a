package dataset

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/stabrank/internal/contracts"
)

// ParseHTML reads a trial table from the first <table> element of an
// HTML document. The first row (th or td) supplies the trial labels,
// every following row a configuration parameter plus trial outcomes.
func ParseHTML(r io.Reader, source string) (*contracts.Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: no <table> element", ErrEmptyInput)
	}

	ds := &contracts.Dataset{Source: source}
	var parseErr error

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if parseErr != nil {
			return
		}

		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		// Header row carries the trial labels; the leading cell above
		// the parameter column is ignored when present.
		if ds.Labels == nil {
			if len(cells) > 1 {
				ds.Labels = cells[1:]
			} else {
				ds.Labels = cells
			}
			return
		}

		if len(cells) != len(ds.Labels)+1 {
			parseErr = fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrShapeMismatch, i, len(cells), len(ds.Labels)+1)
			return
		}

		param, err := parseCell(cells[0])
		if err != nil || math.IsNaN(param) {
			parseErr = fmt.Errorf("%w: row %d parameter %q", ErrBadCell, i, cells[0])
			return
		}

		values := make([]float64, len(ds.Labels))
		for j, tok := range cells[1:] {
			v, err := parseCell(tok)
			if err != nil {
				parseErr = fmt.Errorf("%w: row %d column %q value %q",
					ErrBadCell, i, ds.Labels[j], tok)
				return
			}
			values[j] = v
		}

		ds.Params = append(ds.Params, param)
		ds.Values = append(ds.Values, values)
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if ds.Labels == nil {
		return nil, ErrEmptyInput
	}
	return ds, nil
}
