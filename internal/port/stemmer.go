package port

// Stemmer maps a word to its stem.
type Stemmer interface {
	Stem(word string) string
}
