// Package pipeline coordinates the extraction run: repository
// discovery, the file-entity pass, code extraction fan-out, history
// extraction and the write passes.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/shama-llama/semantic-web-kms/internal/extract"
	"github.com/shama-llama/semantic-web-kms/internal/files"
	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/history"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
	"github.com/shama-llama/semantic-web-kms/internal/lang"
	"github.com/shama-llama/semantic-web-kms/internal/parser"
	"github.com/shama-llama/semantic-web-kms/internal/writer"
)

// Options configures a run.
type Options struct {
	// ScanRoot is the directory whose subdirectories are candidate
	// repositories.
	ScanRoot string

	// BaseIRI overrides the default identifier prefix.
	BaseIRI string

	// Workers bounds both the repository group and the per-repository
	// file fan-out. Zero means runtime.NumCPU().
	Workers int

	// Languages restricts extraction to the named languages; empty
	// allows every registered language.
	Languages []string
}

// Pipeline runs the extraction passes over every repository under the
// scan root and applies the results to one graph store.
type Pipeline struct {
	store      graph.Store
	ids        *identity.Registry
	writer     *writer.Writer
	extractors *extract.Registry
	queries    *parser.QueryCache
	opts       Options
}

// New creates a pipeline writing into the given store.
func New(store graph.Store, opts Options) *Pipeline {
	ids := identity.NewRegistry(opts.BaseIRI)
	queries := parser.NewQueryCache()
	return &Pipeline{
		store:      store,
		ids:        ids,
		writer:     writer.New(store, ids),
		extractors: extract.NewRegistry(queries),
		queries:    queries,
		opts:       opts,
	}
}

// Close releases the compiled query cache.
func (p *Pipeline) Close() {
	p.queries.Close()
}

func (p *Pipeline) workers() int {
	if p.opts.Workers > 0 {
		return p.opts.Workers
	}
	return runtime.NumCPU()
}

// Run processes every repository under the scan root. Repositories run
// concurrently; a cancelled context stops new work and lets in-flight
// repositories finish their write passes, so the store stays
// consistent.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	repos, err := history.ScanRoot(p.opts.ScanRoot)
	if err != nil {
		return err
	}
	slog.Info("pipeline.start", "root", p.opts.ScanRoot, "repos", len(repos))

	g := new(errgroup.Group)
	g.SetLimit(p.workers())
	for _, repoPath := range repos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.processRepository(ctx, repoPath)
		})
	}
	err = g.Wait()

	slog.Info("pipeline.done",
		"duration", time.Since(start).Round(time.Millisecond),
		"statements", p.store.Len())
	return err
}

func (p *Pipeline) processRepository(ctx context.Context, repoPath string) error {
	name := filepath.Base(repoPath)

	repo, err := history.ExtractRepository(repoPath)
	if err != nil {
		slog.Warn("history.repo.skip", "repo", name, "error", err)
		return nil
	}

	infos, err := files.Discover(ctx, repoPath, nil)
	if err != nil {
		return fmt.Errorf("discover %s: %w", name, err)
	}
	infos = p.filterLanguages(infos)

	summaries, err := p.extractFiles(ctx, name, infos)
	if err != nil {
		return err
	}

	if err := p.writer.WriteFiles(name, infos); err != nil {
		return err
	}
	if err := p.writer.WriteRepository(repo); err != nil {
		return err
	}
	for _, rec := range repo.Commits {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.writer.WriteCommit(rec); err != nil {
			return err
		}
	}
	for i, sum := range summaries {
		if sum == nil {
			continue
		}
		if err := p.writer.WriteCodeEntities(name, infos[i].RelPath, sum); err != nil {
			return err
		}
	}

	p.writer.EnsureIssueCompleteness()

	slog.Info("pipeline.repo.done",
		"repo", name, "files", len(infos), "commits", len(repo.Commits))
	return nil
}

func (p *Pipeline) filterLanguages(infos []files.FileInfo) []files.FileInfo {
	if len(p.opts.Languages) == 0 {
		return infos
	}
	allowed := make(map[string]bool, len(p.opts.Languages))
	for _, l := range p.opts.Languages {
		allowed[l] = true
	}
	out := infos[:0]
	for _, f := range infos {
		if allowed[string(f.Language)] {
			out = append(out, f)
		}
	}
	return out
}

// extractionKey dedups shared extraction work. Identical bytes still
// extract differently per language, so the language is part of the key.
type extractionKey struct {
	hash     uint64
	language lang.Language
}

// extractFiles runs code extraction over the discovered files with a
// bounded group, filling each FileInfo's content hash as a side effect.
// Files with identical contents and language share one extraction.
func (p *Pipeline) extractFiles(ctx context.Context, repoName string, infos []files.FileInfo) ([]extract.Summary, error) {
	summaries := make([]extract.Summary, len(infos))

	var mu sync.Mutex
	byHash := make(map[extractionKey]extract.Summary)

	numWorkers := p.workers()
	if numWorkers > len(infos) && len(infos) > 0 {
		numWorkers = len(infos)
	}

	g := new(errgroup.Group)
	g.SetLimit(numWorkers)
	for i := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info := &infos[i]

			data, err := os.ReadFile(info.Path)
			if err != nil {
				slog.Warn("extract.file.skip", "repo", repoName, "file", info.RelPath, "error", err)
				return nil
			}
			hash := xxh3.Hash(data)
			info.ContentHash = strconv.FormatUint(hash, 16)
			key := extractionKey{hash: hash, language: info.Language}

			mu.Lock()
			cached, ok := byHash[key]
			mu.Unlock()
			if ok {
				summaries[i] = cached
				return nil
			}

			source := []byte(strings.ToValidUTF8(string(data), "�"))
			sum, err := p.extractors.Extract(source, info.Language)
			if err != nil {
				slog.Warn("extract.file.skip", "repo", repoName, "file", info.RelPath, "error", err)
				return nil
			}

			mu.Lock()
			byHash[key] = sum
			mu.Unlock()
			summaries[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
