package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"spatial-interactor/internal/config"
	"spatial-interactor/internal/interactor"
	"spatial-interactor/internal/logging"
	"spatial-interactor/internal/pick"
	"spatial-interactor/internal/scene/memscene"
	"spatial-interactor/internal/snapshot"
	"spatial-interactor/internal/telemetry"
	"spatial-interactor/internal/texture"
	"spatial-interactor/internal/trace"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene YAML file")
	traceFile := flag.String("trace", "", "Input trace YAML file")
	outputDir := flag.String("output", "", "Snapshot output directory (snapshots are skipped when empty)")
	size := flag.Int("size", 0, "Snapshot size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")
	metrics := flag.Bool("metrics", false, "Print interaction counters after the replay")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile:  *sceneFile,
		TraceFile:  *traceFile,
		OutputDir:  *outputDir,
		RenderSize: *size,
		Workers:    *workers,
		LogLevel:   *logLevel,
		Metrics:    *metrics,
	})

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New(level)

	if cfg.SceneFile == "" || cfg.TraceFile == "" {
		fmt.Fprintln(os.Stderr, "Error: both a scene and a trace are required. Use -scene/-trace or config.json.")
		os.Exit(2)
	}

	sc, err := memscene.Load(cfg.SceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	sc.Window.SetLightFollowCamera(*cfg.LightFollowCamera)

	events, err := trace.Load(cfg.TraceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trace: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := telemetry.New()
	device := trace.NewDevice()
	ctrl := interactor.New(sc.Window, device, pick.New(memscene.Picker{}),
		interactor.WithLogger(logger),
		interactor.WithHooks(m.Hooks()),
		interactor.WithDollyMotionFactor(cfg.DollyMotionFactor),
		interactor.WithAutoAdjustCameraClippingRange(*cfg.AutoAdjustClippingRange),
	)

	// Frames are copied at the snapshot event and encoded after the replay.
	var jobs []snapshot.Job
	player := trace.NewPlayer(device, ctrl,
		trace.WithLogger(logger),
		trace.WithSnapshotHandler(func(seq int, label string) {
			for _, ren := range sc.Window.Renderers() {
				jobs = append(jobs, snapshot.Job{Seq: seq, Label: label, Frame: ren.Snapshot()})
			}
		}),
	)

	fmt.Printf("Scene: %s (%d renderers)\n", cfg.SceneFile, len(sc.Window.Renderers()))
	fmt.Printf("Trace: %s (%d events)\n", cfg.TraceFile, len(events))
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	n, err := player.Play(ctx, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Replay interrupted after %d events: %v\n", n, err)
		os.Exit(1)
	}
	fmt.Printf("Replayed %d/%d events in %.1fms, final state %s, %d renders\n",
		n, len(events), float64(time.Since(start).Microseconds())/1000, ctrl.State(), sc.Window.Renders())

	for _, ren := range sc.Window.Renderers() {
		cam := ren.Camera()
		fmt.Printf("  %s: camera %v → %v, physical %v\n", ren.Name, cam.Position(), cam.FocalPoint(), cam.PhysicalTranslation())
		for _, a := range ren.Actors() {
			fmt.Printf("    %s at %v\n", a.Name, a.Prop().Position())
		}
	}

	if cfg.Metrics {
		fmt.Println("------------------------------------------------------------")
		if err := m.WriteSummary(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if cfg.OutputDir == "" || len(jobs) == 0 {
		return
	}

	// Build texture index
	texIndex := texture.BuildIndex(sc.TextureDir)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	fmt.Printf("Snapshots: %d, Workers: %d, Output: %s\n", len(jobs), cfg.Workers, cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start = time.Now()
	results := snapshot.Run(ctx, snapshot.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Logger:      logger,
	}, jobs)
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := 0
	for i, r := range results {
		if !r.Success {
			failed++
			fmt.Printf("  %s: %s\n", snapshot.FileName(jobs[i]), r.Error)
		}
	}
	for path, err := range texCache.Failures() {
		logger.Warn("texture load failed", "path", path, "error", err)
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := snapshot.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
