package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/models"
	"go.uber.org/zap"
)

// SubmissionStore is an append-only log of finalized registrations
type SubmissionStore interface {
	Append(ctx context.Context, record models.RegistrationRecord) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// CSVSubmissionStore appends records as rows to a CSV file. The header row is
// written when the file is empty. Rows are never rewritten.
type CSVSubmissionStore struct {
	path   string
	mu     sync.Mutex
	logger *logging.SafeLogger

	// rows caches the data row count once the file has been scanned. A failed
	// append clears counted so the next Count rescans.
	rows    int
	counted bool
}

// NewCSVSubmissionStore creates a store writing to path. The file is created
// on first append.
func NewCSVSubmissionStore(path string, logger *logging.SafeLogger) *CSVSubmissionStore {
	return &CSVSubmissionStore{path: path, logger: logger}
}

// Path returns the file the store writes to
func (s *CSVSubmissionStore) Path() string {
	return s.path
}

// Append writes record as one row and fsyncs the file before returning.
// All errors wrap models.ErrPersistence.
func (s *CSVSubmissionStore) Append(_ context.Context, record models.RegistrationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", models.ErrPersistence, s.path, err)
	}

	if err := s.writeRow(f, record); err != nil {
		_ = f.Close()
		s.counted = false
		return err
	}

	if err := f.Close(); err != nil {
		s.counted = false
		return fmt.Errorf("%w: close %s: %v", models.ErrPersistence, s.path, err)
	}
	s.rows++
	return nil
}

func (s *CSVSubmissionStore) writeRow(f *os.File, record models.RegistrationRecord) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", models.ErrPersistence, s.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(models.SubmissionHeader); err != nil {
			return fmt.Errorf("%w: write header: %v", models.ErrPersistence, err)
		}
		s.logger.Info("created submissions file", zap.String("path", s.path))
	}
	if err := w.Write(record.Row()); err != nil {
		return fmt.Errorf("%w: write row: %v", models.ErrPersistence, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", models.ErrPersistence, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %v", models.ErrPersistence, err)
	}
	return nil
}

// Count returns the number of data rows, excluding the header. The file is
// scanned once and the count is kept current by Append. A missing file holds
// zero records.
func (s *CSVSubmissionStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.counted {
		return s.rows, nil
	}
	rows, err := s.scanRows()
	if err != nil {
		return 0, err
	}
	s.rows = rows
	s.counted = true
	return rows, nil
}

// scanRows counts complete data rows. Rows with the wrong number of fields,
// such as one torn by an interrupted write, are skipped, and a malformed tail
// ends the scan.
func (s *CSVSubmissionStore) scanRows() (int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %v", models.ErrPersistence, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	rows, skipped := 0, 0
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("stopped counting at malformed row",
				zap.String("path", s.path),
				zap.Int("line", parseErr.Line),
				zap.Error(err))
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: read %s: %v", models.ErrPersistence, s.path, err)
		}
		if header {
			header = false
			continue
		}
		if len(record) != len(models.SubmissionHeader) {
			skipped++
			continue
		}
		rows++
	}

	if skipped > 0 {
		s.logger.Warn("skipped incomplete rows", zap.String("path", s.path), zap.Int("skipped", skipped))
	}
	return rows, nil
}
