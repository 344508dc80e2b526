package dto

// ErrorResponse corpo padrão de erro da API local.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"` // violações de validação, em ordem
}

// Envelope embrulha uma resposta de mutação com o sinal de modo degradado
// (escrita aplicada apenas no cache local por indisponibilidade do backend).
type Envelope struct {
	Data     any  `json:"dados"`
	Degraded bool `json:"salvoLocalmente,omitempty"`
}
