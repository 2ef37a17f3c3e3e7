package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"sipsa-dashboard/internal/dashboard"
	"sipsa-dashboard/internal/dataset"
	"sipsa-dashboard/internal/router"
)

const (
	defaultPort = "8000"
	defaultTopN = 10
	pagePath    = "web/index.html"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	path, err := dataset.ResolvePath(os.Getenv("SIPSA_DATASET_PATH"))
	if err != nil {
		log.Fatalf("❌ %v (set SIPSA_DATASET_PATH)", err)
	}

	topN := defaultTopN
	if raw := os.Getenv("DASHBOARD_TOP_N"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Fatalf("❌ Invalid DASHBOARD_TOP_N: %q", raw)
		}
		topN = n
	}

	// ───────────────────────── DATASET ─────────────────────────
	cache := dataset.NewCache(path)

	// The source file must be loadable before we serve anything.
	rows, err := cache.Snapshot()
	if err != nil {
		log.Fatal("❌ Dataset load failed: ", err)
	}
	log.Printf("[DATASET] serving %d observations from %s", len(rows), path)

	// ───────────────────────── WIRING ─────────────────────────
	service := dashboard.NewService(cache, topN)
	handler := dashboard.NewHandler(service)

	page := pagePath
	if _, err := os.Stat(page); err != nil {
		log.Printf("[WEB] %s not found, serving API only", page)
		page = ""
	}

	r := router.NewRouter(handler, page)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	log.Printf("🚀 Dashboard running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
