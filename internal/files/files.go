// Package files walks repository work trees and discovers the source
// files the extractors understand.
package files

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
)

// ignoreDirs are directory names skipped during discovery: VCS
// metadata, tool caches and build output.
var ignoreDirs = map[string]bool{
	".cache": true, ".eggs": true, ".env": true, ".git": true,
	".gradle": true, ".hg": true, ".idea": true, ".maven": true,
	".mypy_cache": true, ".nox": true, ".npm": true, ".nyc_output": true,
	".pnpm-store": true, ".pytest_cache": true, ".ruff_cache": true,
	".svn": true, ".tmp": true, ".tox": true, ".venv": true,
	".vs": true, ".vscode": true, ".yarn": true,
	"__pycache__": true, "bin": true, "bower_components": true,
	"build": true, "coverage": true, "dist": true, "env": true,
	"htmlcov": true, "node_modules": true, "obj": true, "out": true,
	"Pods": true, "site-packages": true, "target": true, "temp": true,
	"tmp": true, "vendor": true, "venv": true,
}

// ignoreSuffixes are file suffixes skipped during discovery.
var ignoreSuffixes = []string{
	".tmp", "~", ".pyc", ".pyo", ".o", ".a", ".so", ".dll", ".class",
}

// FileInfo is one discovered source file. ContentHash is filled by the
// pipeline once the file has been read.
type FileInfo struct {
	Path        string
	RelPath     string
	Language    lang.Language
	Size        int64
	ContentHash string
}

// Options configures discovery.
type Options struct {
	// IgnoreFile overrides the default <repo>/.kmsignore pattern file.
	IgnoreFile string
}

// Discover walks a repository work tree and returns every file whose
// extension maps to a registered language, honoring the ignore
// directory list and .kmsignore patterns.
func Discover(ctx context.Context, repoPath string, opts *Options) ([]FileInfo, error) {
	repoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ignorePath := filepath.Join(repoPath, ".kmsignore")
	if opts != nil && opts.IgnoreFile != "" {
		ignorePath = opts.IgnoreFile
	}
	extraIgnore, _ := loadIgnoreFile(ignorePath)

	var infos []FileInfo
	err = filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return filepath.SkipDir
		}

		rel, _ := filepath.Rel(repoPath, path)
		if d.IsDir() {
			// The repository root is always walked, whatever its name.
			if rel != "." && skipDir(d.Name(), rel, extraIgnore) {
				return filepath.SkipDir
			}
			return nil
		}

		for _, suffix := range ignoreSuffixes {
			if strings.HasSuffix(path, suffix) {
				return nil
			}
		}

		l, ok := lang.LanguageForExtension(filepath.Ext(path))
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		infos = append(infos, FileInfo{
			Path:     path,
			RelPath:  filepath.ToSlash(rel),
			Language: l,
			Size:     info.Size(),
		})
		return nil
	})
	return infos, err
}

func skipDir(name, rel string, extraIgnore []string) bool {
	if ignoreDirs[name] {
		return true
	}
	for _, pattern := range extraIgnore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

func loadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	return patterns, scanner.Err()
}
