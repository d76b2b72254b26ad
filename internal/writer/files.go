package writer

import (
	"fmt"
	"path"
	"strconv"

	"github.com/shama-llama/semantic-web-kms/internal/files"
	"github.com/shama-llama/semantic-web-kms/internal/graph"
	"github.com/shama-llama/semantic-web-kms/internal/identity"
)

// WriteFiles declares the repository and its discovered files: type and
// label statements plus path, extension, size, language and content
// hash attributes, with containsFile/isFileOf pairs. This pass runs
// before the history and code write paths, which reference files
// without typing them.
func (w *Writer) WriteFiles(repoName string, infos []files.FileInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	repoID, err := w.ids.IdentifierFor(repoName, identity.Repository, "")
	if err != nil {
		return fmt.Errorf("files of %s: %w", repoName, err)
	}
	w.ensureTyped(repoID, graph.ClassRepository, repoName)

	for _, f := range infos {
		fileID, err := w.ids.IdentifierFor(repoName, identity.File, f.RelPath)
		if err != nil {
			return fmt.Errorf("file %s: %w", f.RelPath, err)
		}
		w.ensureTyped(fileID, graph.ClassFile, path.Base(f.RelPath))
		w.store.Add(graph.Lit(fileID, graph.PredPath, f.RelPath))
		if ext := path.Ext(f.RelPath); ext != "" {
			w.store.Add(graph.Lit(fileID, graph.PredExtension, ext))
		}
		w.store.Add(graph.Lit(fileID, graph.PredSizeBytes, strconv.FormatInt(f.Size, 10)))
		w.store.Add(graph.Lit(fileID, graph.PredLanguage, string(f.Language)))
		if f.ContentHash != "" {
			w.store.Add(graph.Lit(fileID, graph.PredContentHash, f.ContentHash))
		}
		w.store.Add(graph.IRI(repoID, graph.PredContainsFile, fileID))
		w.store.Add(graph.IRI(fileID, graph.PredIsFileOf, repoID))
	}
	return nil
}
