package memstore

import (
	"fmt"
	"sort"
	"sync"

	"textfeat/internal/domain"
	"textfeat/internal/port"
)

// MemoryStore is an in-memory port.CorpusStore.
type MemoryStore struct {
	mu         sync.RWMutex
	docs       map[string]domain.Document
	categories map[string][]string
	stats      domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:       make(map[string]domain.Document),
		categories: make(map[string][]string),
	}
}

// FromCorpus builds a MemoryStore holding corpus. Document IDs are
// "<category>/<index>".
func FromCorpus(corpus domain.Corpus) *MemoryStore {
	s := NewMemoryStore()
	words := 0
	for _, cat := range corpus.Categories() {
		for i, doc := range corpus[cat] {
			s.PutDocument(domain.Document{
				ID:       fmt.Sprintf("%s/%04d", cat, i),
				Category: cat,
				Words:    doc,
			})
			words += len(doc)
		}
	}
	s.stats = domain.Stats{
		TotalDocs:       corpus.NumDocuments(),
		TotalWords:      words,
		TotalCategories: len(corpus),
	}
	return s
}

func (s *MemoryStore) PutDocument(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.docs[doc.ID]; ok {
		if old.Category == doc.Category {
			s.docs[doc.ID] = doc
			return nil
		}
		s.removeFromCategory(old.Category, doc.ID)
	}
	s.docs[doc.ID] = doc
	s.categories[doc.Category] = append(s.categories[doc.Category], doc.ID)
	return nil
}

func (s *MemoryStore) GetDocument(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document not found: %s", id)
	}
	return doc, nil
}

func (s *MemoryStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil
	}
	s.removeFromCategory(doc.Category, id)
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) ListDocuments() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *MemoryStore) Categories() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedCategories(), nil
}

func (s *MemoryStore) FileIDs(categories ...string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cats, err := s.resolve(categories)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, cat := range cats {
		ids = append(ids, s.categories[cat]...)
	}
	return ids, nil
}

func (s *MemoryStore) Words(categories ...string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cats, err := s.resolve(categories)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, cat := range cats {
		for _, id := range s.categories[cat] {
			words = append(words, s.docs[id].Words...)
		}
	}
	return words, nil
}

func (s *MemoryStore) Documents(category string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.categories[category]; !ok {
		return nil, fmt.Errorf("category not found: %s", category)
	}
	return s.documents(category), nil
}

func (s *MemoryStore) Corpus() (domain.Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	corpus := make(domain.Corpus, len(s.categories))
	for cat := range s.categories {
		corpus[cat] = s.documents(cat)
	}
	return corpus, nil
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) documents(category string) [][]string {
	ids := s.categories[category]
	docs := make([][]string, len(ids))
	for i, id := range ids {
		docs[i] = s.docs[id].Words
	}
	return docs
}

func (s *MemoryStore) sortedCategories() []string {
	cats := make([]string, 0, len(s.categories))
	for cat := range s.categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func (s *MemoryStore) resolve(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return s.sortedCategories(), nil
	}
	cats := make([]string, 0, len(requested))
	for _, cat := range requested {
		if _, ok := s.categories[cat]; !ok {
			return nil, fmt.Errorf("category not found: %s", cat)
		}
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats, nil
}

func (s *MemoryStore) removeFromCategory(category, id string) {
	ids := s.categories[category]
	for i, existing := range ids {
		if existing == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.categories, category)
		return
	}
	s.categories[category] = ids
}

var _ port.CorpusStore = (*MemoryStore)(nil)
