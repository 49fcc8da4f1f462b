package storage

import (
	"io"
	"os"

	"github.com/san-kum/motion/internal/keyframe"
)

type ExportData struct {
	Name     string             `json:"name"`
	Kind     string             `json:"kind"`
	FPS      int                `json:"fps"`
	Lanes    int                `json:"lanes"`
	Duration float64            `json:"duration"`
	Resolved bool               `json:"resolved"`
	KeyTimes []float64          `json:"key_times"`
	Values   [][]float64        `json:"values"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
}

func newExportData(meta *TrackMetadata, track *keyframe.Track) ExportData {
	return ExportData{
		Name:     meta.Name,
		Kind:     meta.Kind,
		FPS:      track.FPS,
		Lanes:    track.Lanes,
		Duration: track.Duration(),
		Resolved: track.Resolved,
		KeyTimes: track.NormalizedKeyTimes(),
		Values:   track.Values,
		Metrics:  meta.Metrics,
	}
}

// ExportJSON writes the track as keyframe data with key times normalised to
// [0, 1].
func ExportJSON(path string, meta *TrackMetadata, track *keyframe.Track) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, track)
}

func WriteJSON(out io.Writer, meta *TrackMetadata, track *keyframe.Track) error {
	return writeJSON(out, newExportData(meta, track))
}
