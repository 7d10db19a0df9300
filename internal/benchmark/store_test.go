package benchmark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"accelbench/internal/algorithms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(id string, ts time.Time, refMean float64) Report {
	m, _ := algorithms.MatrixFromRows([][]int64{{2, 3}, {5, 7}})
	return Report{
		RunID:     id,
		Timestamp: ts,
		Results: []Comparison{
			{
				Task:       "Sum of Squares (n=10)",
				Arg:        10,
				Iterations: 2,
				Reference:  &Result{Name: "sum (reference)", Result: algorithms.Scalar(385), Timings: []float64{refMean, refMean}, Mean: refMean},
			},
			{
				Task:         "Matrix Mult (2x2)",
				Arg:          2,
				Iterations:   1,
				Reference:    &Result{Name: "matrix (reference)", Result: m, Timings: []float64{0.002}, Mean: 0.002},
				Accelerated:  &Result{Name: "matrix (accelerated)", Result: m, Timings: []float64{0.001}, Mean: 0.001},
				Speedup:      ptr(2.0),
				ResultsMatch: ptr(true),
			},
		},
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	reports, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, reports)

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	now := time.Now().UTC().Truncate(time.Second)
	// Saved out of order on purpose.
	require.NoError(t, store.Save(sampleReport("second", now, 0.002)))
	require.NoError(t, store.Save(sampleReport("first", now.Add(-time.Hour), 0.001)))

	reports, err = store.LoadAll()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "first", reports[0].RunID)
	assert.Equal(t, "second", reports[1].RunID)

	latest, err = store.LoadLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.RunID)

	// Interface-typed results survive the round trip.
	assert.Equal(t, algorithms.Scalar(385), latest.Results[0].Reference.Result)
	m, ok := latest.Results[1].Accelerated.Result.(algorithms.Matrix)
	require.True(t, ok)
	assert.Equal(t, int64(7), m.At(1, 1))
	require.NotNil(t, latest.Results[1].Speedup)
	assert.Equal(t, 2.0, *latest.Results[1].Speedup)
	assert.Nil(t, latest.Results[0].Speedup)
}

func TestFileStore_EmptyAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	store, err := NewFileStore(empty)
	require.NoError(t, err)
	reports, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, reports)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0644))
	store, err = NewFileStore(corrupt)
	require.NoError(t, err)
	_, err = store.LoadAll()
	assert.Error(t, err)
	assert.Error(t, store.Save(Report{}), "save must not clobber an unreadable history")
}

func TestReportFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "performance_analysis.json")
	want := sampleReport("run-1", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 0.001)

	require.NoError(t, WriteReportFile(path, &want))

	got, err := ReadReportFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.RunID, got.RunID)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, want.Results[0].Reference.Timings, got.Results[0].Reference.Timings)
	assert.True(t, want.Results[1].Reference.Result.Equal(got.Results[1].Reference.Result))

	_, err = ReadReportFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
