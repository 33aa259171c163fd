// Package export writes interaction slices out as XLSX workbooks, the format
// analysts pull into their own tooling.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cx-workbench-go/internal/types"
)

var header = []string{"ID", "Type", "Category", "Sentiment", "Date", "Channel", "Topic", "NPS", "Text"}

// Write renders the records as one sheet, one row per record, and streams the
// workbook to w.
func Write(w io.Writer, sheet string, records []types.Interaction) error {
	if sheet == "" {
		sheet = "Interactions"
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		nps := ""
		if r.NPS != nil {
			nps = fmt.Sprintf("%d", *r.NPS)
		}
		row := []interface{}{
			r.ID, string(r.Kind), r.Category, string(r.Sentiment),
			r.Date, r.Channel, r.Topic, nps, r.Content(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
