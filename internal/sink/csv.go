// Package sink provides the append-only CSV outputs shared by all workers.
// Each sink serializes writers behind its own mutex so rows are never torn or
// interleaved, and both tolerate reopening across runs.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/BookRecomendations/DataScrapper/internal/scraper"
)

// ResultSink appends (id, description) rows to a CSV file. The header row is
// written only when the file is empty at open time, so repeated runs never
// duplicate it.
type ResultSink struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
	logger *zap.Logger
}

// NewResultSink opens (or creates) the result file in append mode.
func NewResultSink(path string, logger *zap.Logger) (*ResultSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	file, writer, empty, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	if empty {
		if err := writer.Write([]string{"ID", "Description"}); err != nil {
			file.Close()
			return nil, fmt.Errorf("write header to %s: %w", path, err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			file.Close()
			return nil, fmt.Errorf("flush header to %s: %w", path, err)
		}
	}
	return &ResultSink{file: file, writer: writer, logger: logger}, nil
}

// Append writes one row per outcome. The whole batch is flushed under the
// lock so rows from concurrent workers never interleave.
func (s *ResultSink) Append(outcomes []scraper.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, outcome := range outcomes {
		row := []string{strconv.Itoa(outcome.ID), outcome.Description}
		if err := s.writer.Write(row); err != nil {
			return fmt.Errorf("write result row for id %d: %w", outcome.ID, err)
		}
		s.logger.Debug("saved description to CSV", zap.Int("id", outcome.ID))
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flush result rows: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *ResultSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("flush result sink: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close result sink: %w", err)
	}
	return nil
}

// ErrorSink appends (id, url, error) rows to a CSV file. It has no header.
// Errors are rare and need durability as soon as possible, so every append
// flushes immediately.
type ErrorSink struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
	logger *zap.Logger
}

// NewErrorSink opens (or creates) the error file in append mode.
func NewErrorSink(path string, logger *zap.Logger) (*ErrorSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	file, writer, _, err := openAppend(path)
	if err != nil {
		return nil, err
	}
	return &ErrorSink{file: file, writer: writer, logger: logger}, nil
}

// Append records one failed item.
func (s *ErrorSink) Append(id int, url, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writer.Write([]string{strconv.Itoa(id), url, message}); err != nil {
		return fmt.Errorf("write error row for id %d: %w", id, err)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flush error row for id %d: %w", id, err)
	}
	s.logger.Debug("logged error to CSV", zap.Int("id", id), zap.String("url", url))
	return nil
}

// Close closes the underlying file.
func (s *ErrorSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("flush error sink: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close error sink: %w", err)
	}
	return nil
}

func openAppend(path string) (*os.File, *csv.Writer, bool, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, false, fmt.Errorf("open sink file %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, false, fmt.Errorf("stat sink file %s: %w", path, err)
	}
	return file, csv.NewWriter(file), info.Size() == 0, nil
}
