//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"io"
	"syscall/js"
	"time"

	"github.com/sirupsen/logrus"
	"textfeat/internal/adapter/analyzer"
	"textfeat/internal/adapter/memstore"
	"textfeat/internal/domain"
	"textfeat/internal/usecase"
)

var (
	store      *memstore.MemoryStore
	tokenizer  *analyzer.Tokenizer
	normalizer *analyzer.Normalizer
	log        *logrus.Entry
)

func init() {
	store = memstore.NewMemoryStore()
	tokenizer = analyzer.NewTokenizer(true)
	normalizer = analyzer.NewNormalizer(nil, nil)

	l := logrus.New()
	l.SetOutput(io.Discard)
	log = l.WithField("component", "wasm")
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textfeatAdd", js.FuncOf(addDocument))
	js.Global().Set("textfeatStats", js.FuncOf(topWords))
	js.Global().Set("textfeatFeatures", js.FuncOf(buildFeatures))
	js.Global().Set("textfeatClear", js.FuncOf(clearCorpus))

	<-c
}

func addDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return makeError("usage: textfeatAdd(category, filename, content)")
	}

	category := args[0].String()
	filename := args[1].String()
	words := tokenizer.Tokenize(args[2].String())

	doc := domain.Document{
		ID:       category + "/" + filename,
		Category: category,
		Path:     filename,
		ModTime:  time.Now(),
		Words:    words,
	}
	if err := store.PutDocument(doc); err != nil {
		return makeError("adding document failed: " + err.Error())
	}
	if err := refreshStats(); err != nil {
		return makeError("stats failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success":  true,
		"id":       doc.ID,
		"words":    len(words),
		"category": category,
	})
}

func topWords(this js.Value, args []js.Value) interface{} {
	category := ""
	n := 20
	if len(args) > 0 {
		category = args[0].String()
	}
	if len(args) > 1 {
		n = args[1].Int()
	}

	statsUC := usecase.NewStatsUseCase(store, normalizer, log)
	top, err := statsUC.TopWords(category, n)
	if err != nil {
		return makeError("stats failed: " + err.Error())
	}

	stats, _ := store.GetStats()
	return makeResult(map[string]interface{}{
		"corpus": stats,
		"top":    top,
	})
}

func buildFeatures(this js.Value, args []js.Value) interface{} {
	opts := usecase.FeatureOptions{
		Weighting:      string(domain.WeightingTFIDF),
		TopTerms:       10,
		VocabularySize: 500,
	}
	if len(args) > 0 {
		if err := json.Unmarshal([]byte(args[0].String()), &opts); err != nil {
			return makeError("invalid options: " + err.Error())
		}
	}

	featureUC := usecase.NewFeatureUseCase(store, normalizer, log)
	result, err := featureUC.Build(context.Background(), opts)
	if err != nil {
		return makeError("feature build failed: " + err.Error())
	}

	data, _ := json.Marshal(result)
	return string(data)
}

func clearCorpus(this js.Value, args []js.Value) interface{} {
	store = memstore.NewMemoryStore()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func refreshStats() error {
	docs, err := store.ListDocuments()
	if err != nil {
		return err
	}
	cats, err := store.Categories()
	if err != nil {
		return err
	}
	total := 0
	for _, doc := range docs {
		total += len(doc.Words)
	}
	return store.UpdateStats(domain.Stats{
		TotalDocs:       len(docs),
		TotalWords:      total,
		TotalCategories: len(cats),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
