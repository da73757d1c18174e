package port

type Tokenizer interface {
	Tokenize(text string) []string
}
