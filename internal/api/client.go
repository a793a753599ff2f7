package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperror "lojaadmin/internal/errors"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/pkg/session"
)

// errorResponse é o shape do corpo de erro que a API remota devolve em
// respostas não-2xx. Todos os campos são opcionais.
type errorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client é o transporte HTTP para a API remota. Responsabilidades: montar a
// URL a partir da base fixa, anexar a credencial Bearer quando houver sessão,
// e converter respostas de falha no contrato de erro da aplicação.
//
// O Client NÃO faz retry nem aplica timeout além do configurado no
// http.Client: uma falha de rede aparece uma única vez, como erro.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logger.Logger
}

// NewClient cria o transporte. A baseURL é normalizada para terminar em "/".
func NewClient(baseURL string, timeout time.Duration, store session.Store, log logger.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// Do executa uma requisição e retorna o corpo bruto da resposta em sucesso.
// Contrato: exatamente UM de (corpo, erro), nunca ambos e nunca nenhum.
func (c *Client) Do(ctx context.Context, metodo string, path string, corpo interface{}) ([]byte, error) {
	var body io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return nil, apperror.NewInternalError("falha ao serializar o corpo da requisição", err)
		}
		body = bytes.NewReader(dados)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.baseURL+path, body)
	if err != nil {
		return nil, apperror.NewInternalError("falha ao montar a requisição", err)
	}

	req.Header.Set("Accept", "application/json")
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Credencial: best effort. Sem sessão, a requisição segue anônima e o
	// servidor decide (endpoints de login/registro não exigem token).
	if sess, ok, err := c.store.Load(ctx); err != nil {
		c.log.Warn("falha ao ler a sessão armazenada; requisição seguirá sem credencial", map[string]interface{}{"erro": err.Error()})
	} else if ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	// ID de correlação para amarrar logs de requisição e resposta.
	reqID := uuid.New().String()
	req.Header.Set("X-Request-ID", reqID)

	c.log.Debug("requisição enviada", map[string]interface{}{
		"request_id": reqID,
		"method":     metodo,
		"path":       path,
	})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.NewInternalError("falha de rede ao chamar a API", err)
	}
	defer resp.Body.Close()

	dados, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewInternalError("falha ao ler a resposta da API", err)
	}

	c.log.Debug("resposta recebida", map[string]interface{}{
		"request_id": reqID,
		"status":     resp.StatusCode,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.erroDaResposta(resp.StatusCode, dados)
	}

	return dados, nil
}

// erroDaResposta converte uma resposta não-2xx em APIError, extraindo o
// código de erro do corpo quando o servidor o informa.
func (c *Client) erroDaResposta(status int, corpo []byte) error {
	var er errorResponse
	// Corpo não-JSON (e.g., HTML de proxy) é tolerado: fica só o status.
	_ = json.Unmarshal(corpo, &er)

	codigo := er.Code
	if codigo == "" && er.Error != "" {
		codigo = er.Error
	}

	c.log.Debug("a API respondeu com erro", map[string]interface{}{
		"status":  status,
		"codigo":  codigo,
		"message": er.Message,
	})

	return apperror.NewAPIError(status, codigo, string(corpo))
}
