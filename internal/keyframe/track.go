package keyframe

// Track is a baked animation sampled at a fixed rate.
type Track struct {
	FPS      int
	Lanes    int
	Resolved bool

	KeyTimes   []float64
	Values     [][]float64
	Velocities [][]float64
}

func newTrack(fps, lanes int, capacity int) *Track {
	return &Track{
		FPS:        fps,
		Lanes:      lanes,
		KeyTimes:   make([]float64, 0, capacity),
		Values:     make([][]float64, 0, capacity),
		Velocities: make([][]float64, 0, capacity),
	}
}

func (t *Track) append(at float64, value, velocity []float64) {
	t.KeyTimes = append(t.KeyTimes, at)
	t.Values = append(t.Values, value)
	t.Velocities = append(t.Velocities, velocity)
}

// Len is the number of keys.
func (t *Track) Len() int { return len(t.KeyTimes) }

// Duration is the time of the last key.
func (t *Track) Duration() float64 {
	if len(t.KeyTimes) == 0 {
		return 0
	}
	return t.KeyTimes[len(t.KeyTimes)-1]
}

// Lane returns the values of lane i across all keys.
func (t *Track) Lane(i int) []float64 {
	out := make([]float64, len(t.Values))
	for k, row := range t.Values {
		out[k] = row[i]
	}
	return out
}

// Speed returns the velocity of lane i across all keys.
func (t *Track) Speed(i int) []float64 {
	out := make([]float64, len(t.Velocities))
	for k, row := range t.Velocities {
		out[k] = row[i]
	}
	return out
}

// Final returns the values of the last key.
func (t *Track) Final() []float64 {
	if len(t.Values) == 0 {
		return nil
	}
	return t.Values[len(t.Values)-1]
}

// Rows flattens the track into time, lane values, lane velocities per key.
func (t *Track) Rows() [][]float64 {
	rows := make([][]float64, len(t.KeyTimes))
	for k, at := range t.KeyTimes {
		row := make([]float64, 0, 1+2*t.Lanes)
		row = append(row, at)
		row = append(row, t.Values[k]...)
		row = append(row, t.Velocities[k]...)
		rows[k] = row
	}
	return rows
}

// NormalizedKeyTimes maps key times onto [0, 1], the form keyframe
// animation APIs expect.
func (t *Track) NormalizedKeyTimes() []float64 {
	out := make([]float64, len(t.KeyTimes))
	d := t.Duration()
	if d <= 0 {
		return out
	}
	for k, at := range t.KeyTimes {
		out[k] = at / d
	}
	return out
}

// FromRows rebuilds a track from rows produced by Rows.
func FromRows(fps, lanes int, rows [][]float64) (*Track, error) {
	t := newTrack(fps, lanes, len(rows))
	for i, row := range rows {
		if len(row) != 1+2*lanes {
			return nil, &RowError{Row: i, Got: len(row), Want: 1 + 2*lanes}
		}
		t.append(row[0], append([]float64(nil), row[1:1+lanes]...), append([]float64(nil), row[1+lanes:]...))
	}
	return t, nil
}
