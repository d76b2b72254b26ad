// semantic-web-kms extracts a knowledge graph from the repositories
// under a scan root and serializes it as N-Triples.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shama-llama/semantic-web-kms/internal/config"
	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/pipeline"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("semantic-web-kms", version)
		return
	}
	if err := run(); err != nil {
		slog.Error("run.failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load(".")

	root := flag.String("root", cfg.EffectiveScanRoot(), "directory containing candidate repositories")
	out := flag.String("out", cfg.EffectiveOutput(), "N-Triples output file")
	base := flag.String("base", cfg.Extraction.BaseIRI, "identifier base IRI (default built in)")
	db := flag.String("db", cfg.Extraction.Database, "optional SQLite file backing the store")
	workers := flag.Int("workers", cfg.EffectiveWorkers(), "extraction worker bound")
	languages := flag.String("languages", strings.Join(cfg.Extraction.Languages, ","),
		"comma-separated language names to extract (empty = all)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, closeStore, err := openStore(*db)
	if err != nil {
		return err
	}
	defer closeStore()

	// A prior run's output merges into this one.
	if f, err := os.Open(*out); err == nil {
		if err := graph.Decode(f, store); err != nil {
			f.Close()
			return fmt.Errorf("load prior output %s: %w", *out, err)
		}
		f.Close()
		slog.Info("graph.loaded", "path", *out, "statements", store.Len())
	}

	var langNames []string
	for _, l := range strings.Split(*languages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			langNames = append(langNames, l)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(store, pipeline.Options{
		ScanRoot:  *root,
		BaseIRI:   *base,
		Workers:   *workers,
		Languages: langNames,
	})
	defer p.Close()

	if err := p.Run(ctx); err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()
	if err := graph.Encode(store, f); err != nil {
		return fmt.Errorf("serialize %s: %w", *out, err)
	}
	slog.Info("graph.written", "path", *out, "statements", store.Len())
	return nil
}

func openStore(dbPath string) (graph.Store, func(), error) {
	if dbPath == "" {
		return graph.NewMemory(), func() {}, nil
	}
	s, err := graph.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store %s: %w", dbPath, err)
	}
	return s, func() { s.Close() }, nil
}
