package session

import (
	"context"
	"sync"
)

// MemoryStore guarda a sessão apenas em memória. Serve como fake nos testes
// e como backend explícito para quem não quer persistir credencial nenhuma.
type MemoryStore struct {
	mu   sync.Mutex
	sess *Sessao
}

// NewMemoryStore cria um store vazio.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, sess Sessao) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := sess
	s.sess = &copia
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (Sessao, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil || s.sess.Token == "" {
		return Sessao{}, false, nil
	}
	return *s.sess, true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
