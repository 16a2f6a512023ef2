package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/policia-dp/delegacia-api/internal/apperror"
	"github.com/policia-dp/delegacia-api/internal/server/models"
	"github.com/policia-dp/delegacia-api/internal/server/validation"
)

const maxBodyBytes = 1 << 20

// readBody slurps the request body with a size cap.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.Validation([]string{validation.MsgMalformedBody})
	}
	return data, nil
}

type registerRequest struct {
	Nome               string      `json:"nome"`
	Email              string      `json:"email"`
	Senha              string      `json:"senha"`
	Cargo              string      `json:"cargo"`
	DataDeIncorporacao models.Date `json:"dataDeIncorporacao"`
}

type registerResponse struct {
	Message string        `json:"message"`
	Agente  *models.Agent `json:"agente"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}

	body, err := validation.ParseBody(data)
	if err != nil {
		return err
	}
	if err := validation.NewAgent.Apply(body); err != nil {
		return err
	}

	var req registerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return apperror.Validation([]string{validation.MsgMalformedBody})
	}

	agent := &models.Agent{
		Nome:               req.Nome,
		Email:              req.Email,
		Cargo:              req.Cargo,
		DataDeIncorporacao: req.DataDeIncorporacao,
	}
	created, err := s.auth.Register(r.Context(), agent, req.Senha)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "Agente registrado com sucesso!",
		Agente:  created,
	})
	return nil
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Message string        `json:"message"`
	Agente  *models.Agent `json:"agente"`
	Token   string        `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}

	var req loginRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return apperror.Validation([]string{validation.MsgMalformedBody})
		}
	}

	agent, token, err := s.auth.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login bem-sucedido!",
		Agente:  agent,
		Token:   token,
	})
	return nil
}
