package usecase

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"textfeat/internal/adapter/fs"
	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// ProgressFunc is called after every processed file.
type ProgressFunc func(processed, total int, currentFile string)

// ImportUseCase imports a directory tree into a corpus store.
type ImportUseCase struct {
	store     port.CorpusStore
	walker    port.FileWalker
	tokenizer port.Tokenizer
	minWords  int
	logger    *logrus.Entry
}

// NewImportUseCase creates a new import use case. Documents with fewer than
// minWords tokens are not imported.
func NewImportUseCase(
	store port.CorpusStore,
	walker port.FileWalker,
	tokenizer port.Tokenizer,
	minWords int,
	logger *logrus.Entry,
) *ImportUseCase {
	if logger == nil {
		logger = logrus.WithField("component", "import")
	}
	return &ImportUseCase{
		store:     store,
		walker:    walker,
		tokenizer: tokenizer,
		minWords:  minWords,
		logger:    logger,
	}
}

// ImportResult contains the results of an import.
type ImportResult struct {
	FilesImported int
	FilesSkipped  int
	FilesTooShort int
	FilesDeleted  int
	Stats         domain.Stats
	Errors        []string
}

// Import walks root and stores one document per file, using the first
// directory below root as the category. Unchanged files are skipped and
// documents whose file disappeared are deleted.
func (u *ImportUseCase) Import(root string, progress ProgressFunc) (*ImportResult, error) {
	result := &ImportResult{}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root: %w", err)
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	u.logger.WithFields(logrus.Fields{"root": root, "files": len(files)}).Debug("walked corpus directory")

	existingDocs, err := u.store.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing documents: %w", err)
	}
	existing := make(map[string]domain.Document, len(existingDocs))
	for _, doc := range existingDocs {
		existing[doc.ID] = doc
	}

	seen := make(map[string]bool, len(files))
	for i, file := range files {
		id, err := documentID(root, file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			continue
		}
		seen[id] = true

		if doc, ok := existing[id]; ok && doc.Category == file.Category && doc.ModTime.Unix() >= file.ModTime {
			result.FilesSkipped++
		} else if err := u.importFile(id, file, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to import %s: %v", file.Path, err))
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	for id := range existing {
		if seen[id] {
			continue
		}
		if err := u.store.DeleteDocument(id); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", id, err))
			continue
		}
		result.FilesDeleted++
	}

	stats, err := u.computeStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}
	result.Stats = stats

	u.logger.WithFields(logrus.Fields{
		"imported":   result.FilesImported,
		"skipped":    result.FilesSkipped,
		"deleted":    result.FilesDeleted,
		"documents":  stats.TotalDocs,
		"categories": stats.TotalCategories,
	}).Info("corpus import finished")

	return result, nil
}

func (u *ImportUseCase) importFile(id string, file port.FileInfo, result *ImportResult) error {
	content, err := fs.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	words := u.tokenizer.Tokenize(content)
	if len(words) < u.minWords {
		u.logger.WithFields(logrus.Fields{"document": id, "words": len(words)}).Debug("document too short")
		result.FilesTooShort++
		// an existing version must not linger once the file became too short
		return u.store.DeleteDocument(id)
	}

	doc := domain.Document{
		ID:       id,
		Category: file.Category,
		Path:     file.Path,
		ModTime:  time.Unix(file.ModTime, 0),
		Words:    words,
	}
	if err := u.store.PutDocument(doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	result.FilesImported++
	return nil
}

func (u *ImportUseCase) computeStats() (domain.Stats, error) {
	cats, err := u.store.Categories()
	if err != nil {
		return domain.Stats{}, err
	}
	ids, err := u.store.FileIDs()
	if err != nil {
		return domain.Stats{}, err
	}
	words, err := u.store.Words()
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		TotalDocs:       len(ids),
		TotalWords:      len(words),
		TotalCategories: len(cats),
	}, nil
}

// documentID is the slash separated path of a file relative to the corpus
// root, e.g. "news/ca01".
func documentID(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
