package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvbauer/retrovault/config"
	"github.com/lvbauer/retrovault/library"
	"github.com/lvbauer/retrovault/logging"
	"github.com/lvbauer/retrovault/thumbs"
	"github.com/lvbauer/retrovault/ui"
	"github.com/lvbauer/retrovault/uploading"
	"github.com/lvbauer/retrovault/videos"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to the config file")

	// Config override flags
	probeBackend := flag.String("probe", "", "Probe backend: ffmpeg or opencv (overrides config)")
	thumbnailDir := flag.String("thumbnail-dir", "", "Thumbnail directory (overrides config)")
	logPath := flag.String("log-path", "", "Log directory (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")

	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg.Override(config.Overrides{
		ProbeBackend: probeBackend,
		ThumbnailDir: thumbnailDir,
		LogPath:      logPath,
		LogLevel:     logLevel,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.CreateLogger(logging.LogLevel(cfg.LogLevel), cfg.LogPath, "retrovault")

	var probe videos.MediaProbe
	switch cfg.ProbeBackend {
	case config.ProbeOpenCV:
		probe = videos.NewOpenCVProbe(logger)
	default:
		probe = videos.NewFFmpegProbe(logger)
	}

	extractor := videos.NewProbeExtractor(logger, probe)

	store, err := thumbs.NewStore(cfg.ThumbnailDir, logger)
	if err != nil {
		log.Fatalf("Failed to create thumbnail store: %v", err)
	}
	cache := thumbs.NewCache(cfg.ThumbnailCacheBytes, logger)
	provider := thumbs.NewProvider(logger, store, cache, extractor)

	lib := library.New(logger, library.SeedRecords())

	queue := uploading.NewQueue(logger, extractor, store, cfg.UploadBufferSize,
		time.Duration(cfg.DrainTimeoutSeconds)*time.Second)

	stopChan := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go queue.Start(stopChan, &wg, func(record videos.VideoRecord) {
		lib.Add(record)
	})

	logger.Info("Starting retrovault", "probe", cfg.ProbeBackend, "records", lib.Len())

	p := tea.NewProgram(ui.NewModel(lib, queue, provider, logger))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}

	// Let in-flight ingestions finish before exiting.
	close(stopChan)
	wg.Wait()
	logger.Info("Shutting down", "records", lib.Len())
}
