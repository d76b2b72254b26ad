package files

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shama-llama/semantic-web-kms/internal/lang"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "main.go", "package main\n")
	write(t, dir, "src/app.py", "def main(): pass\n")
	write(t, dir, "README.md", "# readme\n")
	write(t, dir, "lib.pyc", "\x00")
	write(t, dir, "node_modules/dep/index.js", "module.exports = {}\n")

	infos, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	byRel := make(map[string]FileInfo)
	for _, f := range infos {
		byRel[f.RelPath] = f
	}
	if len(byRel) != 2 {
		t.Fatalf("got %d files %v, want main.go and src/app.py", len(byRel), byRel)
	}
	if got := byRel["main.go"].Language; got != lang.Go {
		t.Errorf("main.go language = %q, want go", got)
	}
	py, ok := byRel["src/app.py"]
	if !ok {
		t.Fatal("src/app.py not discovered")
	}
	if py.Language != lang.Python {
		t.Errorf("app.py language = %q, want python", py.Language)
	}
	if py.Size != int64(len("def main(): pass\n")) {
		t.Errorf("app.py size = %d", py.Size)
	}
}

func TestDiscoverIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "main.go", "package main\n")
	write(t, dir, "generated/gen.go", "package generated\n")
	write(t, dir, ".kmsignore", "# generated output\ngenerated\n")

	infos, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(infos) != 1 || infos[0].RelPath != "main.go" {
		t.Errorf("Discover = %v, want only main.go", infos)
	}
}

func TestDiscoverCancellation(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "main.go", "package main\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Discover(ctx, dir, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDiscoverRootNamedLikeIgnoredDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "vendor")
	write(t, dir, "main.go", "package main\n")
	write(t, dir, "vendor/dep/dep.go", "package dep\n")

	infos, err := Discover(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(infos) != 1 || infos[0].RelPath != "main.go" {
		t.Errorf("infos = %v, want just main.go", infos)
	}
}
