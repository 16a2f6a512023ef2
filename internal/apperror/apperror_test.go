package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/policia-dp/delegacia-api/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError_MapsSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing credentials", common.ErrMissingCredentials, http.StatusBadRequest, MsgMissingCredentials},
		{"invalid credentials", common.ErrInvalidCredentials, http.StatusNotFound, MsgInvalidCredentials},
		{"conflict", common.ErrorAlreadyExists, http.StatusBadRequest, MsgEmailInUse},
		{"not found", common.ErrorNotFound, http.StatusNotFound, MsgAgentNotFound},
		{"token generation", common.ErrTokenGeneration, http.StatusInternalServerError, MsgTokenGeneration},
		{"expired token", common.ErrTokenExpired, http.StatusUnauthorized, MsgInvalidToken},
		{"invalid token", common.ErrInvalidToken, http.StatusUnauthorized, MsgInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromError(tc.err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantMsg, got.Message)
		})
	}
}

func TestFromError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("repo: %w", common.ErrorNotFound)
	got := FromError(err)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, MsgAgentNotFound, got.Message)
}

func TestFromError_PassesThroughAppError(t *testing.T) {
	in := Validation([]string{"O nome é obrigatório"})
	got := FromError(fmt.Errorf("handler: %w", in))
	assert.Same(t, in, got)
}

func TestFromError_UnknownFaultIsGeneric500(t *testing.T) {
	got := FromError(errors.New("pq: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, MsgInternal, got.Message)
	assert.NotContains(t, got.Message, "connection reset")
}

func TestAppError_JSONShape(t *testing.T) {
	b, err := json.Marshal(New(http.StatusNotFound, MsgAgentNotFound))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":404,"message":"Nenhum agente encontrado para o id especificado","errors":[]}`, string(b))
}
