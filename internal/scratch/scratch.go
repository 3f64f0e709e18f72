// Package scratch keeps the hourly window on disk as a CSV table and reads it
// back before fitting.
package scratch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sartorproj/goarima/timeseries"

	"github.com/katiamach/weather-forecast-web/internal/model"
)

var header = []string{"hours", "temp", "hum"}

var (
	// ErrBadHeader is returned when the table read back lacks a required column.
	ErrBadHeader = errors.New("scratch table has an unexpected header")
	// ErrMisaligned is returned when the columns read back differ in length.
	ErrMisaligned = errors.New("scratch table columns are misaligned")
)

// Store is a single CSV file shared by all predictions. Each round trip
// overwrites the file and reads it back while holding the lock.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a new Store writing to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the table.
func (s *Store) Path() string {
	return s.path
}

// Roundtrip writes the samples and returns the temperature and humidity
// columns as read back from the file.
func (s *Store) Roundtrip(samples []model.Sample) (temps, hums *timeseries.Series, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(samples); err != nil {
		return nil, nil, fmt.Errorf("failed to write scratch table: %w", err)
	}

	temps, hums, err = s.read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read scratch table: %w", err)
	}

	return temps, hums, nil
}

func (s *Store) write(samples []model.Sample) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, sm := range samples {
		rec := []string{
			strconv.Itoa(sm.Index),
			strconv.FormatFloat(sm.Temp, 'f', -1, 64),
			strconv.FormatFloat(sm.Humidity, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}

// read loads the temp and hum columns. The header is checked first because
// the loader falls back to the last column when a name is missing.
func (s *Store) read() (*timeseries.Series, *timeseries.Series, error) {
	if err := s.checkHeader(); err != nil {
		return nil, nil, err
	}

	temps, err := timeseries.LoadCSVColumn(s.path, "temp")
	if err != nil {
		return nil, nil, fmt.Errorf("temp column: %w", err)
	}
	hums, err := timeseries.LoadCSVColumn(s.path, "hum")
	if err != nil {
		return nil, nil, fmt.Errorf("hum column: %w", err)
	}

	// Unparsable cells are skipped per column, so a partial row shifts one
	// column against the other.
	if temps.Len() != hums.Len() {
		return nil, nil, fmt.Errorf("%d temp and %d hum values: %w", temps.Len(), hums.Len(), ErrMisaligned)
	}

	temps.Name, hums.Name = "temp", "hum"
	return temps, hums, nil
}

func (s *Store) checkHeader() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	names, err := csv.NewReader(f).Read()
	if err != nil {
		return ErrBadHeader
	}

	var hasTemp, hasHum bool
	for _, name := range names {
		switch name {
		case "temp":
			hasTemp = true
		case "hum":
			hasHum = true
		}
	}
	if !hasTemp || !hasHum {
		return ErrBadHeader
	}

	return nil
}
