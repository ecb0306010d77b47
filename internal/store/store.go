package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/typefx/internal/reveal"
)

var (
	ErrRunNotFound  = errors.New("store: run not found")
	ErrInvalidRunID = errors.New("store: invalid run id")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Direction  string    `json:"direction"`
	Timestamp  time.Time `json:"timestamp"`
	Duration   float64   `json:"duration_ms"`
	FrameRate  int       `json:"frame_rate"`
	Ticks      int       `json:"ticks"`
	Frames     int       `json:"frames"`
	Final      string    `json:"final"`
	Completed  bool      `json:"completed"`
	CharsTotal int       `json:"chars_total"`
}

var csvHeader = []string{"run", "elapsed", "progress", "target", "total", "continue", "visible"}

// Stamp fills in the timestamp, id and tick count that Save would assign.
// A timestamp already set is kept, so stamping before Save yields the same id.
func Stamp(meta *RunMetadata, samples []reveal.Sample) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.ID = fmt.Sprintf("trace_%d", meta.Timestamp.UnixNano())
	meta.Ticks = len(samples)
}

func checkRunID(runID string) error {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID {
		return fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return nil
}

// Save writes metadata.json and ticks.csv for one trace and returns its id.
func (s *Store) Save(meta RunMetadata, samples []reveal.Sample) (string, error) {
	Stamp(&meta, samples)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ticks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatUint(uint64(smp.Run), 10),
			strconv.FormatFloat(smp.Elapsed, 'f', 6, 64),
			strconv.FormatFloat(smp.Progress, 'f', 6, 64),
			strconv.Itoa(smp.Target),
			strconv.Itoa(smp.Total),
			strconv.FormatBool(smp.Continue),
			smp.Visible,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns all saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("read %s metadata: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]reveal.Sample, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []reveal.Sample{}, nil
	}

	samples := make([]reveal.Sample, 0, len(records)-1)
	for i, rec := range records[1:] {
		smp, err := parseSample(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", runID, i+2, err)
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseSample(rec []string) (reveal.Sample, error) {
	var smp reveal.Sample

	run, err := strconv.ParseUint(rec[0], 10, 64)
	if err != nil {
		return smp, err
	}
	if smp.Elapsed, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return smp, err
	}
	if smp.Progress, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return smp, err
	}
	if smp.Target, err = strconv.Atoi(rec[3]); err != nil {
		return smp, err
	}
	if smp.Total, err = strconv.Atoi(rec[4]); err != nil {
		return smp, err
	}
	if smp.Continue, err = strconv.ParseBool(rec[5]); err != nil {
		return smp, err
	}
	smp.Run = reveal.RunID(run)
	smp.Visible = rec[6]
	return smp, nil
}
