package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
)

// csvSource handles CSV files. Rows are grouped into batches, each batch one
// body fragment on its own synthetic page so the page-based section fallback
// produces usable groupings.
type csvSource struct{}

const csvBatchSize = 20

func (s *csvSource) extract(data []byte, filename string) ([]fragment.TextFragment, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	dataRows := records[1:]

	var frags []fragment.TextFragment
	page := 0
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := min(i+csvBatchSize, len(dataRows))
		page++

		var text strings.Builder
		for _, row := range dataRows[i:end] {
			for j, cell := range row {
				if j < len(headers) {
					text.WriteString(headers[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString(". ")
		}
		frags = append(frags, lineFragment(strings.TrimSpace(text.String()), page, 1, fragment.DefaultFontSize, 0))
	}

	return frags, nil
}
