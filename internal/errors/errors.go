package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do cliente.
// Ela permite que o código externo (views, serviços) acesse a Categoria do
// erro e decida como apresentá-lo ao usuário.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "API_ERROR")
	HTTPStatus() int  // Status HTTP associado (0 para erros puramente locais)
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros Locais) ---

// ValidationError representa falhas de validação detectadas ANTES de qualquer
// chamada de rede. Nunca é enviado ao servidor.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado na API remota.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// UnauthorizedError representa credencial ausente, inválida ou expirada.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autorização.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// --- Tipos de Erro da API Remota ---

// APIError representa uma resposta não-2xx da API remota. Carrega o status
// HTTP, o código de erro do servidor (quando presente no corpo) e o corpo
// bruto para diagnóstico.
type APIError struct {
	Status int
	Code   string
	Corpo  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Erro da API (status %d, código %q)", e.Status, e.Code)
}
func (e *APIError) Category() string { return "API_ERROR" }
func (e *APIError) HTTPStatus() int  { return e.Status }
func (e *APIError) Unwrap() error    { return nil }

// NewAPIError cria um erro a partir de uma resposta de falha da API remota.
func NewAPIError(status int, code string, corpo string) AppError {
	return &APIError{Status: status, Code: code, Corpo: corpo}
}

// InternalError representa falhas inesperadas (transporte, serialização).
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro de rede)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno (para falhas de transporte ou código).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}
