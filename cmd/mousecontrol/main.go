package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ricmed/mouse-control/internal/app"
	"github.com/ricmed/mouse-control/internal/robot"
	"github.com/ricmed/mouse-control/internal/server"
	"github.com/ricmed/mouse-control/internal/store"
	"github.com/ricmed/mouse-control/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("MouseControl - Hand Tracking Mouse")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mousecontrol")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "mousecontrol.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the pipeline with the real pointer sink
	a := app.New(app.Config{
		Store: st,
		Sink:  robot.NewSink(),
	})
	a.LoadSettings()

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
		Camera:    a.Camera(),
	})

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main thread until quit
	t := tray.New()
	t.OnToggle(func(tracking bool) {
		a.SetTracking(tracking)
	})
	t.OnCalibrate(func() {
		a.RequestCalibration()
	})

	// Keep the tray's scale display in sync with calibration results
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		var last float64
		for range ticker.C {
			if scale := a.Params().Snapshot().ScaleFactor; scale != last {
				last = scale
				t.SetScaleFactor(scale)
			}
		}
	}()
	t.OnSettings(func() {
		openBrowser("http://localhost" + serverAddr)
	})
	t.OnQuit(func() {
		a.Stop()
		if err := a.SaveSettings(); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	})
	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mousecontrol/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mousecontrol", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
