package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	board "github.com/Magnus-Fjeldstad/nympenburgerstrasse54"
	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/config"
	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/handlers"
	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/metrics"
	"github.com/Magnus-Fjeldstad/nympenburgerstrasse54/webserver"
	"github.com/gorilla/mux"
)

//go:embed embed/*
var webContent embed.FS

func main() {
	port := flag.Int("port", 0, "port to serve on (overrides PORT from environment)")
	flag.Parse()

	if err := start(*port); err != nil {
		log.Fatal(err)
	}
}

func start(port int) error {
	shutdownCtx, shutdown := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer shutdown()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Port
	}

	index, err := board.LoadStationIndexFromFile(cfg.StationsFile)
	if err != nil {
		return err
	}
	log.Printf("loaded %d station names from %s", len(index.Names()), cfg.StationsFile)

	collector := metrics.NewCollector()
	api := board.NewBoardAPI(index, cfg.Location, cfg.TransportTypes, board.ViewOptions{
		DepartureLimit: cfg.DepartureLimit,
		ForecastHours:  cfg.ForecastHours,
		Palette:        cfg.Palette,
	}, collector)

	handler := mux.NewRouter()
	handlers.RegisterHandlers(handler, api, cfg.DefaultStation, collector, mustFSSub(webContent, "embed/static"), mustFSSub(webContent, "embed/html"))

	if err := webserver.NewHTTPWebServer(handler).Serve(shutdownCtx, port); err != nil {
		return err
	}

	return nil
}

func mustFSSub(src fs.FS, dir string) fs.FS {
	fsys, err := fs.Sub(src, dir)
	if err != nil {
		panic(err)
	}
	return fsys
}
