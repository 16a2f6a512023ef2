// Package models defines the server-side data model for police agents.
package models

// Agent is a credential record for a police agent. The password hash never
// leaves the auth boundary: the json tag excludes it from every response.
type Agent struct {
	ID                 int64  `json:"id"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	SenhaHash          string `json:"-"`
	Cargo              string `json:"cargo"`
	DataDeIncorporacao Date   `json:"dataDeIncorporacao"`
}

// AgentPatch carries the fields present in a partial update. A nil pointer
// means the field was absent from the request body.
type AgentPatch struct {
	Nome               *string
	Email              *string
	Cargo              *string
	DataDeIncorporacao *Date
}

// IsEmpty reports whether the patch changes nothing.
func (p AgentPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil && p.Cargo == nil && p.DataDeIncorporacao == nil
}
