package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene/memscene"
)

func cubeJob(seq int, label string) Job {
	return Job{
		Seq:   seq,
		Label: label,
		Frame: memscene.Frame{
			Renderer: "main",
			View: memscene.View{
				Eye:       mathutil.Vec3{0, 0, 10},
				ViewAngle: 30,
				Near:      0.1,
				Far:       100,
			},
			Actors: []memscene.ActorFrame{{
				Matrix: mathutil.Mat4Identity(),
				Color:  [3]uint8{90, 200, 90},
				Parts: []memscene.PartFrame{{
					Min: mathutil.Vec3{-1, -1, -1},
					Max: mathutil.Vec3{1, 1, 1},
				}},
			}},
		},
	}
}

func TestRunWritesWebP(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{OutputDir: dir, RenderSize: 32, Supersample: 2, Workers: 2}
	jobs := []Job{cubeJob(0, "start"), cubeJob(1, "after rotate")}

	results := Run(context.Background(), cfg, jobs)
	require.Len(t, results, 2)

	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, jobs[i].Seq, r.Seq)
		assert.Greater(t, r.Coverage, 0.0)

		f, err := os.Open(filepath.Join(dir, r.Image))
		require.NoError(t, err)
		img, err := webp.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
	}
	assert.Equal(t, "001-after_rotate-main.webp", results[1].Image)

	manifest := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(manifest, append(results, Result{Seq: 9})))

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "start", entries[0].Label)
	assert.Equal(t, "main", entries[0].Renderer)
}

func TestWriteManifestCreatesAndReportsDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "out", "run1", "manifest.json")
	require.NoError(t, WriteManifest(nested, nil))
	_, err := os.Stat(nested)
	require.NoError(t, err)

	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	err = WriteManifest(filepath.Join(blocker, "manifest.json"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest dir")
}

func TestRunReportsWriteErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	results := Run(context.Background(), Config{OutputDir: blocker, RenderSize: 8}, []Job{cubeJob(0, "x")})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestRunWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, Config{OutputDir: t.TempDir(), RenderSize: 8, Workers: 1}, []Job{cubeJob(0, "a"), cubeJob(1, "b")})
	require.Len(t, results, 2)
	for _, r := range results {
		if !r.Success {
			assert.Equal(t, "not rendered", r.Error)
		}
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "007-_-left_eye.webp", FileName(Job{Seq: 7, Frame: memscene.Frame{Renderer: "left eye"}}))
	assert.Equal(t, "012-a_b-r.webp", FileName(Job{Seq: 12, Label: "a/b", Frame: memscene.Frame{Renderer: "r"}}))
}
