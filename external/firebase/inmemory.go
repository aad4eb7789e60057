package firebase

import (
	"context"
	"maps"
	"sync"
)

// InMemoryDocumentStore インメモリのドキュメントストア
//
// クレデンシャル未設定の開発環境とテストで使用する。
type InMemoryDocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
}

// NewInMemoryDocumentStore インメモリのドキュメントストアを生成します
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		collections: make(map[string][]map[string]any),
	}
}

// Add 指定したコレクションに新規ドキュメントを追加します
func (s *InMemoryDocumentStore) Add(_ context.Context, collection string, doc map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], maps.Clone(doc))
	return nil
}

// FetchAll 指定したコレクションの全ドキュメントを取得します
func (s *InMemoryDocumentStore) FetchAll(_ context.Context, collection string) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]map[string]any, 0, len(s.collections[collection]))
	for _, d := range s.collections[collection] {
		docs = append(docs, maps.Clone(d))
	}
	return docs, nil
}
