package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"lojaadmin/internal/domain"
)

// Chaves fixas das duas entradas de sessão no Redis.
const (
	chaveToken   = "lojaadmin:sessao:token"
	chaveUsuario = "lojaadmin:sessao:user"
)

// RedisStore é a implementação da interface Store sobre Redis, para quem
// prefere manter a sessão fora do disco da máquina (e.g., ambiente
// compartilhado de operação).
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore cria e retorna um store conectado ao endereço informado.
// Faz um PING com timeout curto para detectar indisponibilidade na partida.
func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // Endereço do Redis (e.g., "localhost:6379")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", addr, err)
	}

	return &RedisStore{rdb: rdb}, nil
}

// Save grava as duas entradas em um pipeline, para que token e usuário
// entrem juntos.
func (s *RedisStore) Save(ctx context.Context, sess Sessao) error {
	dadosUsuario, err := json.Marshal(sess.Usuario)
	if err != nil {
		return fmt.Errorf("falha ao serializar usuário: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, chaveToken, sess.Token, 0)
	pipe.Set(ctx, chaveUsuario, dadosUsuario, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("falha ao gravar sessão no Redis: %w", err)
	}
	return nil
}

// Load recupera token e usuário. Token ausente significa "sem sessão".
func (s *RedisStore) Load(ctx context.Context) (Sessao, bool, error) {
	tok, err := s.rdb.Get(ctx, chaveToken).Result()
	if err == redis.Nil {
		return Sessao{}, false, nil
	}
	if err != nil {
		return Sessao{}, false, fmt.Errorf("falha ao ler token do Redis: %w", err)
	}

	var usuario domain.Usuario
	dados, err := s.rdb.Get(ctx, chaveUsuario).Result()
	if err != nil && err != redis.Nil {
		return Sessao{}, false, fmt.Errorf("falha ao ler usuário do Redis: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal([]byte(dados), &usuario); err != nil {
			return Sessao{}, false, fmt.Errorf("usuário armazenado ilegível: %w", err)
		}
	}

	return Sessao{Token: tok, Usuario: usuario}, tok != "", nil
}

// Clear remove as duas chaves. DEL de chave inexistente não é erro.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, chaveToken, chaveUsuario).Err(); err != nil {
		return fmt.Errorf("falha ao limpar sessão no Redis: %w", err)
	}
	return nil
}
