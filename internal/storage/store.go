package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

var ErrMalformedSteps = errors.New("storage: malformed steps file")

// Store keeps one directory per run under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Input     []int              `json:"input"`
	Output    []int              `json:"output"`
	Steps     int                `json:"steps"`
	ElapsedNS int64              `json:"elapsed_ns"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes result's metadata and every step, returning the new run id.
func (s *Store) Save(result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", result.Algorithm, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: result.Algorithm.String(),
		Timestamp: time.Now(),
		Seed:      result.Seed,
		Input:     result.Input,
		Output:    result.Output,
		Steps:     result.Steps(),
		ElapsedNS: result.Elapsed.Nanoseconds(),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeSteps(filepath.Join(runDir, stepsFile), result.Trace); err != nil {
		return "", err
	}
	return runID, nil
}

func writeSteps(path string, tr trace.Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	n := 0
	if len(tr) > 0 {
		n = len(tr[0].Array)
	}
	header := []string{"step", "active", "eliminated"}
	for i := 0; i < n; i++ {
		header = append(header, fmt.Sprintf("a%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, step := range tr {
		row := []string{strconv.Itoa(i), joinInts(step.Active), joinInts(step.Eliminated)}
		for _, v := range step.Array {
			row = append(row, strconv.Itoa(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
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

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads back the steps saved for runID.
func (s *Store) LoadTrace(runID string) (trace.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSteps, err)
	}
	if len(records) < 2 {
		return trace.Trace{}, nil
	}

	tr := make(trace.Trace, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrMalformedSteps, i+1, len(record))
		}
		active, err := splitInts(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d active: %v", ErrMalformedSteps, i+1, err)
		}
		eliminated, err := splitInts(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d eliminated: %v", ErrMalformedSteps, i+1, err)
		}
		arr := make([]int, 0, len(record)-3)
		for _, field := range record[3:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedSteps, i+1, err)
			}
			arr = append(arr, v)
		}
		tr = append(tr, trace.NewStep(arr, active, eliminated))
	}
	return tr, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
