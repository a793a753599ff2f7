package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persiste a sessão em um arquivo JSON local: o equivalente, no
// terminal, do armazenamento por origem do navegador. É o backend padrão.
type FileStore struct {
	path string
}

// NewFileStore cria um store apontando para o caminho informado.
// O diretório é criado sob demanda no primeiro Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save grava token e usuário juntos, com permissão restrita ao dono
// (o arquivo carrega uma credencial).
func (s *FileStore) Save(_ context.Context, sess Sessao) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("falha ao criar diretório da sessão: %w", err)
	}

	dados, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("falha ao serializar sessão: %w", err)
	}

	if err := os.WriteFile(s.path, dados, 0o600); err != nil {
		return fmt.Errorf("falha ao gravar sessão: %w", err)
	}
	return nil
}

// Load lê a sessão do disco. Arquivo ausente significa "sem sessão", não erro.
func (s *FileStore) Load(_ context.Context) (Sessao, bool, error) {
	dados, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Sessao{}, false, nil
	}
	if err != nil {
		return Sessao{}, false, fmt.Errorf("falha ao ler sessão: %w", err)
	}

	var sess Sessao
	if err := json.Unmarshal(dados, &sess); err != nil {
		// Arquivo corrompido: tratamos como sessão ausente (fail-closed),
		// mas reportamos para que o chamador possa logar.
		return Sessao{}, false, fmt.Errorf("sessão armazenada ilegível: %w", err)
	}

	if sess.Token == "" {
		return Sessao{}, false, nil
	}
	return sess, true, nil
}

// Clear remove o arquivo de sessão. Remover o que não existe não é erro.
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}
	return nil
}
