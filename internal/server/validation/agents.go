package validation

import "strings"

// Rule messages for the agent entity. The texts are part of the API contract.
const (
	msgNomeRequired   = "O nome é obrigatório"
	msgNomeEmpty      = "O nome não pode ser vazio"
	msgEmailRequired  = "O email é obrigatório"
	msgEmailFormat    = "Formato de email inválido"
	msgSenhaRequired  = "A senha é obrigatória"
	msgSenhaMin       = "A senha deve ter no mínimo 6 caracteres"
	msgCargoRequired  = "O cargo é obrigatório"
	msgCargoEmpty     = "O cargo não pode ser vazio"
	msgDataRequired   = "A data de incorporação é obrigatória"
	msgDataFormat     = "A data de incorporação deve estar no formato YYYY-MM-DD"
	msgDataFuture     = "A data não pode estar no futuro"
	msgIDImmutable    = "O id não pode ser atualizado"
	msgSenhaImmutable = "A senha não pode ser atualizada por esta rota"
)

func unknownAgentFields(fields []string) string {
	return "Alguns campos não são válidos para a entidade agente: " + strings.Join(fields, ", ")
}

// NewAgent validates registration bodies: every field required, unknown
// fields tolerated.
var NewAgent = &Schema{
	Policy: Loose,
	Rules: []Rule{
		{Field: "nome", Required: true, MissingMessage: msgNomeRequired, Check: RequiredString(msgNomeRequired)},
		{Field: "email", Required: true, MissingMessage: msgEmailRequired, Check: Email(msgEmailRequired, msgEmailFormat)},
		{Field: "senha", Required: true, MissingMessage: msgSenhaRequired, Check: StringMinLen(6, msgSenhaRequired, msgSenhaMin)},
		{Field: "cargo", Required: true, MissingMessage: msgCargoRequired, Check: RequiredString(msgCargoRequired)},
		{Field: "dataDeIncorporacao", Required: true, MissingMessage: msgDataRequired, Check: PastDate(msgDataFormat, msgDataFuture)},
	},
}

// UpdateAgent validates full updates (PUT): the registration field set minus
// the password, unknown fields tolerated, identifier and password frozen.
// Password changes belong to a separate, more careful flow.
var UpdateAgent = &Schema{
	Policy: Loose,
	Rules: []Rule{
		{Field: "nome", Required: true, MissingMessage: msgNomeRequired, Check: RequiredString(msgNomeRequired)},
		{Field: "email", Required: true, MissingMessage: msgEmailRequired, Check: Email(msgEmailRequired, msgEmailFormat)},
		{Field: "cargo", Required: true, MissingMessage: msgCargoRequired, Check: RequiredString(msgCargoRequired)},
		{Field: "dataDeIncorporacao", Required: true, MissingMessage: msgDataRequired, Check: PastDate(msgDataFormat, msgDataFuture)},
	},
	Refinements: []Refinement{
		ForbidField("id", msgIDImmutable),
		ForbidField("senha", msgSenhaImmutable),
	},
}

// PartialUpdateAgent validates partial updates (PATCH): every field optional
// but checked when present, unknown fields rejected by name, identifier and
// password frozen.
var PartialUpdateAgent = &Schema{
	Policy: Strict,
	Rules: []Rule{
		{Field: "nome", Check: RequiredString(msgNomeEmpty)},
		{Field: "email", Check: Email(msgEmailFormat, msgEmailFormat)},
		{Field: "cargo", Check: RequiredString(msgCargoEmpty)},
		{Field: "dataDeIncorporacao", Check: PastDate(msgDataFormat, msgDataFuture)},
	},
	UnknownMessage: unknownAgentFields,
	Refinements: []Refinement{
		ForbidField("id", msgIDImmutable),
		ForbidField("senha", msgSenhaImmutable),
	},
}
