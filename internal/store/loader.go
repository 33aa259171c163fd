package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cx-workbench-go/internal/logger"
	"cx-workbench-go/internal/types"
)

// LoadFile reads an interaction dataset from a JSON or XLSX file, chosen by
// extension. Context lookups (chapters/topics/metadata) only exist for the
// built-in dataset; file-loaded stores start with empty context tables.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadExcel(f)
	default:
		return loadJSON(f)
	}
}

func loadJSON(r io.Reader) (*Store, error) {
	var records []types.Interaction
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no records")
	}
	return New(records, Context{})
}

// loadExcel auto-detects columns by header heuristics; exports from different
// CX tools name their columns inconsistently.
func loadExcel(r io.Reader) (*Store, error) {
	log := logger.New().WithComponent("store.loader")

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idx := detectColumns(rows[0])
	log.WithField("columns", fmt.Sprintf("%+v", idx)).Info("detected dataset columns")

	cell := func(r []string, i int) string {
		if i >= 0 && i < len(r) {
			return strings.TrimSpace(r[i])
		}
		return ""
	}

	var records []types.Interaction
	for i, row := range rows {
		if i == 0 {
			continue
		}
		kind := types.Kind(strings.ToLower(cell(row, idx.kind)))
		if kind == "" {
			// exports without a type column are survey-style feedback dumps
			kind = types.KindSurvey
		}
		rec := types.Interaction{
			ID:        cell(row, idx.id),
			Kind:      kind,
			Category:  cell(row, idx.category),
			Sentiment: types.Sentiment(cell(row, idx.sentiment)),
			Date:      cell(row, idx.date),
			Channel:   cell(row, idx.channel),
			Topic:     cell(row, idx.topic),
		}
		if v := cell(row, idx.nps); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				rec.NPS = &n
			}
		}
		body := cell(row, idx.text)
		switch rec.Kind {
		case types.KindCall:
			rec.RawText = body
		default:
			rec.Text = body
		}
		// rows without an id or a body are headers, totals or junk; skip quietly
		if rec.ID == "" || body == "" {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no usable rows")
	}
	return New(records, Context{})
}

type columnIndex struct {
	id, kind, category, sentiment, date, channel, topic, nps, text int
}

func detectColumns(header []string) columnIndex {
	idx := columnIndex{id: -1, kind: -1, category: -1, sentiment: -1, date: -1, channel: -1, topic: -1, nps: -1, text: -1}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case idx.id == -1 && (l == "id" || strings.Contains(l, "interaction id") || strings.Contains(l, "record id")):
			idx.id = i
		case idx.kind == -1 && (l == "type" || strings.Contains(l, "kind") || strings.Contains(l, "variant")):
			idx.kind = i
		case idx.category == -1 && strings.Contains(l, "categor"):
			idx.category = i
		case idx.sentiment == -1 && strings.Contains(l, "sentiment"):
			idx.sentiment = i
		case idx.date == -1 && (strings.Contains(l, "date") || strings.Contains(l, "time")):
			idx.date = i
		case idx.channel == -1 && (strings.Contains(l, "channel") || strings.Contains(l, "source")):
			idx.channel = i
		case idx.topic == -1 && strings.Contains(l, "topic"):
			idx.topic = i
		case idx.nps == -1 && (strings.Contains(l, "nps") || strings.Contains(l, "score")):
			idx.nps = i
		case idx.text == -1 && (strings.Contains(l, "text") || strings.Contains(l, "transcript") || strings.Contains(l, "comment") || strings.Contains(l, "feedback")):
			idx.text = i
		}
	}
	return idx
}
