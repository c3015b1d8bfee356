// Package snapshot renders scene frames to WebP files with a worker pool.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/sync/errgroup"

	"spatial-interactor/internal/logging"
	"spatial-interactor/internal/postprocess"
	"spatial-interactor/internal/raster"
	"spatial-interactor/internal/scene/memscene"
	"spatial-interactor/internal/texture"
)

// Config holds all shared resources for a snapshot run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	Logger      *slog.Logger
}

// Job is one frame to encode.
type Job struct {
	Seq   int
	Label string
	Frame memscene.Frame
}

// Result holds the outcome of encoding one job.
type Result struct {
	Seq      int
	Label    string
	Renderer string
	// Image is the output path relative to OutputDir.
	Image    string
	Coverage float64
	Success  bool
	Error    string
}

// Run encodes all jobs using a worker pool. Results are in job order.
// Jobs not started before ctx is done are reported as failed.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}

	total := len(jobs)
	results := make([]Result, total)
	for i, j := range jobs {
		results[i] = Result{Seq: j.Seq, Label: j.Label, Renderer: j.Frame.Renderer, Error: "not rendered"}
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobChan)
		for i := range jobs {
			select {
			case jobChan <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		cfg.Logger.Warn("snapshot run interrupted", "error", err, "done", processed.Load(), "total", total)
	}
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Seq: job.Seq, Label: job.Label, Renderer: job.Frame.Renderer}
	res.Image = FileName(job)

	img := raster.RenderFrame(job.Frame, cfg.TexResolver, cfg.RenderSize, cfg.Supersample)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	res.Coverage = raster.Coverage(img)

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	cfg.Logger.Debug("snapshot written", "path", outPath, "coverage", res.Coverage)
	res.Success = true
	return res
}

// FileName is the output name of a job: sequence, label and renderer.
func FileName(job Job) string {
	return fmt.Sprintf("%03d-%s-%s.webp", job.Seq, sanitize(job.Label), sanitize(job.Frame.Renderer))
}

func sanitize(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
