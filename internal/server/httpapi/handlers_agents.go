package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/policia-dp/delegacia-api/internal/apperror"
	"github.com/policia-dp/delegacia-api/internal/server/models"
	"github.com/policia-dp/delegacia-api/internal/server/validation"
)

func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) error {
	agents, err := s.agents.List(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, agents)
	return nil
}

func (s *Server) handleGetAgent(w http.ResponseWriter, r *http.Request) error {
	id, err := validation.ParseIDParam(r.PathValue("id"))
	if err != nil {
		return err
	}

	agent, err := s.agents.Get(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, agent)
	return nil
}

type updateAgentRequest struct {
	Nome               string      `json:"nome"`
	Email              string      `json:"email"`
	Cargo              string      `json:"cargo"`
	DataDeIncorporacao models.Date `json:"dataDeIncorporacao"`
}

func (s *Server) handleUpdateAgent(w http.ResponseWriter, r *http.Request) error {
	id, err := validation.ParseIDParam(r.PathValue("id"))
	if err != nil {
		return err
	}

	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	body, err := validation.ParseBody(data)
	if err != nil {
		return err
	}
	if err := validation.UpdateAgent.Apply(body); err != nil {
		return err
	}

	var req updateAgentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return apperror.Validation([]string{validation.MsgMalformedBody})
	}

	agent := &models.Agent{
		ID:                 id,
		Nome:               req.Nome,
		Email:              req.Email,
		Cargo:              req.Cargo,
		DataDeIncorporacao: req.DataDeIncorporacao,
	}
	updated, err := s.agents.Update(r.Context(), agent)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, updated)
	return nil
}

type partialUpdateAgentRequest struct {
	Nome               *string      `json:"nome"`
	Email              *string      `json:"email"`
	Cargo              *string      `json:"cargo"`
	DataDeIncorporacao *models.Date `json:"dataDeIncorporacao"`
}

func (s *Server) handlePartialUpdateAgent(w http.ResponseWriter, r *http.Request) error {
	id, err := validation.ParseIDParam(r.PathValue("id"))
	if err != nil {
		return err
	}

	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	body, err := validation.ParseBody(data)
	if err != nil {
		return err
	}
	if err := validation.PartialUpdateAgent.Apply(body); err != nil {
		return err
	}

	var req partialUpdateAgentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return apperror.Validation([]string{validation.MsgMalformedBody})
	}

	patch := models.AgentPatch{
		Nome:               req.Nome,
		Email:              req.Email,
		Cargo:              req.Cargo,
		DataDeIncorporacao: req.DataDeIncorporacao,
	}
	updated, err := s.agents.UpdatePartial(r.Context(), id, patch)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, updated)
	return nil
}

func (s *Server) handleDeleteAgent(w http.ResponseWriter, r *http.Request) error {
	id, err := validation.ParseIDParam(r.PathValue("id"))
	if err != nil {
		return err
	}

	if err := s.agents.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
