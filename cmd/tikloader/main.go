package main

import (
	"context"
	"log"

	"github.com/illestjason29/videodownloader/internal/audio"
	"github.com/illestjason29/videodownloader/internal/config"
	"github.com/illestjason29/videodownloader/internal/download"
	"github.com/illestjason29/videodownloader/internal/extract"
	"github.com/illestjason29/videodownloader/internal/platform"
	"github.com/illestjason29/videodownloader/internal/server"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	log.Printf("tikloader v%s starting...", version)

	settings := config.Load()

	if !settings.SkipInstall {
		if err := extract.Install(context.Background()); err != nil {
			log.Fatalf("yt-dlp install check failed: %v", err)
		}
	}

	if settings.TempDir != "" {
		if err := platform.CreateDirectoryIfNotExists(settings.TempDir); err != nil {
			log.Fatalf("failed to ensure temp dir: %v", err)
		}
	}

	svc := download.NewService(extract.NewClient(), audio.NewTagger(), settings.TempDir)
	srv := server.New(svc, settings)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
