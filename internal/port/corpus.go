package port

import "textfeat/internal/domain"

// CorpusReader exposes a categorized document collection.
type CorpusReader interface {
	// Categories returns the category labels in sorted order.
	Categories() ([]string, error)

	// FileIDs returns the document IDs of the given categories, or of the
	// whole corpus when none are given.
	FileIDs(categories ...string) ([]string, error)

	// Words returns the concatenated word sequence of the given categories,
	// or of the whole corpus when none are given.
	Words(categories ...string) ([]string, error)

	// Documents returns the word lists of the documents in a category, in
	// FileIDs order.
	Documents(category string) ([][]string, error)

	// Corpus returns every category with its documents.
	Corpus() (domain.Corpus, error)
}

// CorpusStore is a CorpusReader that can also be written to.
type CorpusStore interface {
	CorpusReader

	PutDocument(doc domain.Document) error

	GetDocument(id string) (domain.Document, error)

	DeleteDocument(id string) error

	ListDocuments() ([]domain.Document, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
