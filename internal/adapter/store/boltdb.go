package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"
	"textfeat/internal/domain"
)

var ErrNotFound = errors.New("not found")

var (
	bucketDocs       = []byte("docs")
	bucketWords      = []byte("words")
	bucketCategories = []byte("categories")
	bucketStats      = []byte("stats")
	keyStats         = []byte("corpus_stats")
)

// BoltStore keeps the categorized corpus in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketWords, bucketCategories, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

type docMeta struct {
	Category  string `json:"category"`
	Path      string `json:"path"`
	ModTime   int64  `json:"mod_time"`
	WordCount int    `json:"word_count"`
}

// PutDocument stores or replaces a document. A document that changes
// category is moved.
func (s *BoltStore) PutDocument(doc domain.Document) error {
	if doc.ID == "" {
		return errors.New("document id is empty")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocs)
		if existing := docs.Get([]byte(doc.ID)); existing != nil {
			var old docMeta
			if err := json.Unmarshal(existing, &old); err != nil {
				return err
			}
			if old.Category != doc.Category {
				if err := removeFromCategory(tx, old.Category, doc.ID); err != nil {
					return err
				}
			}
		}

		meta := docMeta{
			Category:  doc.Category,
			Path:      doc.Path,
			ModTime:   doc.ModTime.Unix(),
			WordCount: len(doc.Words),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := docs.Put([]byte(doc.ID), data); err != nil {
			return err
		}

		words, err := json.Marshal(doc.Words)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketWords).Put([]byte(doc.ID), words); err != nil {
			return err
		}

		return addToCategory(tx, doc.Category, doc.ID)
	})
}

func (s *BoltStore) GetDocument(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		doc, err = getDocument(tx, id)
		return err
	})
	return doc, err
}

func (s *BoltStore) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocs)
		data := docs.Get([]byte(id))
		if data == nil {
			return nil
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		if err := removeFromCategory(tx, meta.Category, id); err != nil {
			return err
		}
		if err := tx.Bucket(bucketWords).Delete([]byte(id)); err != nil {
			return err
		}
		return docs.Delete([]byte(id))
	})
}

// ListDocuments returns every document without its words.
func (s *BoltStore) ListDocuments() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, domain.Document{
				ID:       string(k),
				Category: meta.Category,
				Path:     meta.Path,
				ModTime:  time.Unix(meta.ModTime, 0),
			})
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) Categories() ([]string, error) {
	var cats []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCategories).ForEach(func(k, _ []byte) error {
			cats = append(cats, string(k))
			return nil
		})
	})
	return cats, err
}

func (s *BoltStore) FileIDs(categories ...string) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		cats, err := resolveCategories(tx, categories)
		if err != nil {
			return err
		}
		for _, cat := range cats {
			catIDs, err := categoryIDs(tx, cat)
			if err != nil {
				return err
			}
			ids = append(ids, catIDs...)
		}
		return nil
	})
	return ids, err
}

func (s *BoltStore) Words(categories ...string) ([]string, error) {
	var words []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		cats, err := resolveCategories(tx, categories)
		if err != nil {
			return err
		}
		for _, cat := range cats {
			docs, err := categoryDocuments(tx, cat)
			if err != nil {
				return err
			}
			for _, doc := range docs {
				words = append(words, doc...)
			}
		}
		return nil
	})
	return words, err
}

func (s *BoltStore) Documents(category string) ([][]string, error) {
	var docs [][]string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCategories).Get([]byte(category)) == nil {
			return fmt.Errorf("category %q: %w", category, ErrNotFound)
		}
		var err error
		docs, err = categoryDocuments(tx, category)
		return err
	})
	return docs, err
}

func (s *BoltStore) Corpus() (domain.Corpus, error) {
	corpus := make(domain.Corpus)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCategories).ForEach(func(k, _ []byte) error {
			docs, err := categoryDocuments(tx, string(k))
			if err != nil {
				return err
			}
			corpus[string(k)] = docs
			return nil
		})
	})
	return corpus, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func getDocument(tx *bbolt.Tx, id string) (domain.Document, error) {
	data := tx.Bucket(bucketDocs).Get([]byte(id))
	if data == nil {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	var meta docMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.Document{}, err
	}
	var words []string
	if raw := tx.Bucket(bucketWords).Get([]byte(id)); raw != nil {
		if err := json.Unmarshal(raw, &words); err != nil {
			return domain.Document{}, err
		}
	}
	return domain.Document{
		ID:       id,
		Category: meta.Category,
		Path:     meta.Path,
		ModTime:  time.Unix(meta.ModTime, 0),
		Words:    words,
	}, nil
}

// resolveCategories returns the requested categories in sorted order, or
// all categories when none are requested.
func resolveCategories(tx *bbolt.Tx, requested []string) ([]string, error) {
	b := tx.Bucket(bucketCategories)
	if len(requested) == 0 {
		var all []string
		err := b.ForEach(func(k, _ []byte) error {
			all = append(all, string(k))
			return nil
		})
		return all, err
	}

	cats := make([]string, 0, len(requested))
	for _, cat := range requested {
		if b.Get([]byte(cat)) == nil {
			return nil, fmt.Errorf("category %q: %w", cat, ErrNotFound)
		}
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats, nil
}

func categoryIDs(tx *bbolt.Tx, category string) ([]string, error) {
	data := tx.Bucket(bucketCategories).Get([]byte(category))
	if data == nil {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func categoryDocuments(tx *bbolt.Tx, category string) ([][]string, error) {
	ids, err := categoryIDs(tx, category)
	if err != nil {
		return nil, err
	}
	words := tx.Bucket(bucketWords)
	docs := make([][]string, 0, len(ids))
	for _, id := range ids {
		var doc []string
		if raw := words.Get([]byte(id)); raw != nil {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, err
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func addToCategory(tx *bbolt.Tx, category, id string) error {
	ids, err := categoryIDs(tx, category)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	ids = append(ids, id)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketCategories).Put([]byte(category), data)
}

func removeFromCategory(tx *bbolt.Tx, category, id string) error {
	ids, err := categoryIDs(tx, category)
	if err != nil {
		return err
	}
	filtered := ids[:0]
	for _, existing := range ids {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}

	b := tx.Bucket(bucketCategories)
	if len(filtered) == 0 {
		return b.Delete([]byte(category))
	}
	data, err := json.Marshal(filtered)
	if err != nil {
		return err
	}
	return b.Put([]byte(category), data)
}
