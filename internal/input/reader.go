// Package input reads ID-URL work items from the input CSV.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/BookRecomendations/DataScrapper/internal/scraper"
)

// Column positions in the input file: the id sits in the second column and
// the URL in the third.
const (
	idColumn  = 1
	urlColumn = 2
)

// ReadWorkItems parses the CSV at path into WorkItems. Malformed rows (short
// rows, non-integer ids) are skipped with a logged reason and excluded from
// the total; an unreadable file is a fatal error for the caller.
func ReadWorkItems(path string, logger *zap.Logger) ([]scraper.WorkItem, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var items []scraper.WorkItem
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Error("skipping unparseable row", zap.Int("line", parseErr.Line), zap.Error(err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read input file %s: %w", path, err)
		}
		if len(row) <= urlColumn {
			logger.Error("skipping row: must have at least three columns", zap.Strings("row", row))
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[idColumn]))
		if err != nil {
			logger.Error("skipping row: ID must be an integer", zap.Strings("row", row))
			continue
		}
		items = append(items, scraper.WorkItem{ID: id, URL: strings.TrimSpace(row[urlColumn])})
	}

	logger.Info("read ID-URL pairs", zap.Int("count", len(items)), zap.String("path", path))
	return items, nil
}
