package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store keeps the history of analysis reports.
type Store interface {
	Save(report Report) error
	LoadLatest() (*Report, error)
	LoadAll() ([]Report, error)
}

// FileStore keeps every report in a single JSON array on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(report Report) error {
	reports, err := s.LoadAll()
	if err != nil {
		return err
	}
	reports = append(reports, report)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// LoadAll returns the saved reports oldest first. A missing or empty file is an empty history.
func (s *FileStore) LoadAll() ([]Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Report{}, nil
	}

	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", s.path, err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})
	return reports, nil
}

// LoadLatest returns nil without error when the history is empty.
func (s *FileStore) LoadLatest() (*Report, error) {
	reports, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[len(reports)-1], nil
}

// WriteReportFile writes a single report as indented JSON.
func WriteReportFile(path string, report *Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderJSON(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadReportFile loads a report written by WriteReportFile.
func ReadReportFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &report, nil
}
