package api

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/singleflight"

	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
)

// Querier é a camada de acesso declarativa sobre o Client: executa as
// operações do catálogo aplicando o contrato de cache por tag e a
// deduplicação de queries concorrentes.
//
// Propriedade central: dentro de uma tag, a invalidação provocada por uma
// mutação é aplicada ANTES de a mutação retornar; qualquer releitura
// subsequente refaz a busca e observa o estado pós-mutação.
type Querier struct {
	client *Client
	log    logger.Logger

	// Deduplicação: N observadores concorrentes da mesma query compartilham
	// uma única chamada de rede e recebem o mesmo resultado.
	grupo singleflight.Group

	mu       sync.Mutex
	entradas map[string]json.RawMessage  // chave (operação+args) → resultado em cache
	porTag   map[Tag]map[string]struct{} // índice tag → conjunto de chaves
	versoes  map[Tag]uint64              // incrementada a cada invalidação da tag
}

// NewQuerier cria a camada de acesso sobre o transporte informado.
func NewQuerier(client *Client, log logger.Logger) *Querier {
	return &Querier{
		client:   client,
		log:      log,
		entradas: make(map[string]json.RawMessage),
		porTag:   make(map[Tag]map[string]struct{}),
		versoes:  make(map[Tag]uint64),
	}
}

// Query executa uma operação de leitura do catálogo. Resultado em cache e
// não invalidado responde sem ida à rede; caso contrário uma única chamada é
// emitida, mesmo sob concorrência, e o corpo é cacheado sob a tag provida.
func (q *Querier) Query(ctx context.Context, ep Endpoint, out interface{}, args ...interface{}) error {
	path := ep.Caminho(args...)
	chave := ep.Nome + ":" + path

	q.mu.Lock()
	if corpo, ok := q.entradas[chave]; ok {
		q.mu.Unlock()
		return decodificar(corpo, out)
	}
	q.mu.Unlock()

	v, err, _ := q.grupo.Do(chave, func() (interface{}, error) {
		// Outro voo pode ter populado o cache entre o unlock e o Do.
		q.mu.Lock()
		if corpo, ok := q.entradas[chave]; ok {
			q.mu.Unlock()
			return corpo, nil
		}
		versao := q.versoes[ep.Provides]
		q.mu.Unlock()

		corpo, err := q.client.Do(ctx, ep.Metodo, path, nil)
		if err != nil {
			return nil, err
		}

		q.armazenar(ep.Provides, chave, corpo, versao)
		return json.RawMessage(corpo), nil
	})
	if err != nil {
		return err
	}

	return decodificar(v.(json.RawMessage), out)
}

// Mutate executa uma operação de escrita do catálogo. Em sucesso, a tag
// declarada é invalidada antes do retorno. Em falha, nada é invalidado.
func (q *Querier) Mutate(ctx context.Context, ep Endpoint, corpo interface{}, out interface{}, args ...interface{}) error {
	resp, err := q.client.Do(ctx, ep.Metodo, ep.Caminho(args...), corpo)
	if err != nil {
		return err
	}

	if ep.Invalidates != "" {
		q.Invalidar(ep.Invalidates)
	}

	if out == nil || len(resp) == 0 {
		return nil
	}
	return decodificar(resp, out)
}

// Invalidar descarta todas as entradas sob a tag e incrementa a versão da
// tag, de modo que voos em andamento iniciados antes da mutação não gravem
// resultado pré-mutação no cache.
func (q *Querier) Invalidar(tag Tag) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.versoes[tag]++
	for chave := range q.porTag[tag] {
		delete(q.entradas, chave)
		q.grupo.Forget(chave)
	}
	delete(q.porTag, tag)

	q.log.Debug("tag de cache invalidada", map[string]interface{}{"tag": string(tag)})
}

// armazenar grava o corpo no cache, a menos que a tag tenha sido invalidada
// enquanto a chamada de rede estava em voo (versão mudou).
func (q *Querier) armazenar(tag Tag, chave string, corpo []byte, versao uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.versoes[tag] != versao {
		// Resultado possivelmente pré-mutação: não entra no cache.
		return
	}

	q.entradas[chave] = corpo
	if tag != "" {
		if q.porTag[tag] == nil {
			q.porTag[tag] = make(map[string]struct{})
		}
		q.porTag[tag][chave] = struct{}{}
	}
}

// decodificar desserializa um corpo de resposta no destino do chamador.
func decodificar(corpo json.RawMessage, out interface{}) error {
	if out == nil || len(corpo) == 0 {
		return nil
	}
	if err := json.Unmarshal(corpo, out); err != nil {
		return apperror.NewInternalError("falha ao decodificar a resposta da API", err)
	}
	return nil
}
