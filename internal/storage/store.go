package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"

	"github.com/san-kum/motion/internal/keyframe"
)

const (
	metadataFile = "metadata.json"
	trackFile    = "track.csv"
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

type TrackMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	FPS       int                `json:"fps"`
	Lanes     int                `json:"lanes"`
	Keys      int                `json:"keys"`
	Duration  float64            `json:"duration"`
	Resolved  bool               `json:"resolved"`
	Params    map[string]string  `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Save writes a baked track under a new ID and returns it. The track shape
// fields of meta are filled from track.
func (s *Store) Save(meta TrackMetadata, track *keyframe.Track) (string, error) {
	id := fmt.Sprintf("%s_%s", meta.Name, strconv.FormatUint(snowflake.ID(), 36))
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	meta.Timestamp = time.Now()
	meta.FPS = track.FPS
	meta.Lanes = track.Lanes
	meta.Keys = track.Len()
	meta.Duration = track.Duration()
	meta.Resolved = track.Resolved

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	if err := writeJSON(metaFile, meta); err != nil {
		return "", err
	}

	if err := ExportCSV(filepath.Join(dir, trackFile), track); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every stored track, newest first. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]TrackMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TrackMetadata{}, nil
		}
		return nil, err
	}

	tracks := make([]TrackMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		tracks = append(tracks, *meta)
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Timestamp.After(tracks[j].Timestamp)
	})
	return tracks, nil
}

func (s *Store) Load(id string) (*TrackMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta TrackMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrack(id string) (*keyframe.Track, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, id, trackFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := readRows(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", id, err)
	}

	track, err := keyframe.FromRows(meta.FPS, meta.Lanes, rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	track.Resolved = meta.Resolved
	return track, nil
}

// ExportCSV writes track as time, x0..xn, v0..vn columns.
func ExportCSV(path string, track *keyframe.Track) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, track)
}

func WriteCSV(out io.Writer, track *keyframe.Track) error {
	w := csv.NewWriter(out)

	header := []string{"time"}
	for i := 0; i < track.Lanes; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < track.Lanes; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range track.Rows() {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = strconv.FormatFloat(val, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func readRows(in io.Reader) ([][]float64, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, nil
	}

	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", i+2, j+1, err)
			}
			row[j] = val
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
