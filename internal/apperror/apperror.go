// Package apperror defines the uniform error object every failure in the
// request pipeline collapses into, plus the mapping from internal sentinel
// errors to HTTP-visible outcomes. The HTTP layer is the only consumer of
// the mapping; everything below it raises sentinels from internal/common
// or an *AppError directly.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/policia-dp/delegacia-api/internal/common"
)

// Client-facing message texts. The login failures share one text on purpose:
// an unknown email and a wrong password must be indistinguishable.
const (
	MsgInvalidParams      = "Parâmetros inválidos"
	MsgMissingCredentials = "Email e senha são obrigatórios."
	MsgInvalidCredentials = "Credenciais inválidas."
	MsgEmailInUse         = "O email fornecido já está em uso."
	MsgTokenGeneration    = "Erro ao gerar token de autenticação."
	MsgAgentNotFound      = "Nenhum agente encontrado para o id especificado"
	MsgNoToken            = "Não autorizado, nenhum token fornecido."
	MsgInvalidToken       = "Não autorizado, token inválido."
	MsgInternal           = "Erro interno do servidor."
)

// AppError carries an HTTP status, a client-facing message, and an ordered
// list of sub-errors (one entry per violated validation rule).
type AppError struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// New builds an AppError. Errors is never nil so the JSON field always
// marshals as an array.
func New(status int, message string, details ...string) *AppError {
	if details == nil {
		details = []string{}
	}
	return &AppError{Status: status, Message: message, Errors: details}
}

// Validation builds the 400 returned by the validation engine, with details
// in rule-declaration order.
func Validation(details []string) *AppError {
	return New(http.StatusBadRequest, MsgInvalidParams, details...)
}

// Unauthenticated builds the 401 returned by the access-control middleware.
func Unauthenticated(reason string) *AppError {
	return New(http.StatusUnauthorized, reason)
}

// Internal builds the generic 500. Fault details never reach the caller;
// they are logged by the terminal handler instead.
func Internal() *AppError {
	return New(http.StatusInternalServerError, MsgInternal)
}

// FromError converts any error raised by the pipeline into the AppError the
// terminal handler writes out. An error that is already an *AppError passes
// through; known sentinels map to their HTTP-shaped outcome; anything else
// is an unexpected fault and collapses to the generic 500.
func FromError(err error) *AppError {
	var ae *AppError
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, common.ErrMissingCredentials):
		return New(http.StatusBadRequest, MsgMissingCredentials)
	case errors.Is(err, common.ErrInvalidCredentials):
		// 404, not 401: unknown email and wrong password must be identical.
		return New(http.StatusNotFound, MsgInvalidCredentials)
	case errors.Is(err, common.ErrorAlreadyExists):
		return New(http.StatusBadRequest, MsgEmailInUse)
	case errors.Is(err, common.ErrorNotFound):
		return New(http.StatusNotFound, MsgAgentNotFound)
	case errors.Is(err, common.ErrTokenGeneration):
		return New(http.StatusInternalServerError, MsgTokenGeneration)
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		return Unauthenticated(MsgInvalidToken)
	default:
		return Internal()
	}
}
