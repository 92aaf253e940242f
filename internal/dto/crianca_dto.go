package dto

type CadastrarCriancaRequest struct {
	Nome              string  `json:"nome"               validate:"required,min=1,max=100"`
	NomeResponsavel   string  `json:"nome_responsavel"   validate:"required,min=1,max=100"`
	NumeroResponsavel string  `json:"numero_responsavel" validate:"required,min=1,max=30"`
	Idade             int     `json:"idade"              validate:"required,gt=0"`
	Sala              int     `json:"sala"               validate:"required,min=1,max=4"`
	Observacoes       *string `json:"observacoes"`
}

type CriancaResponse struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	NomeResponsavel   string  `json:"nome_responsavel"`
	NumeroResponsavel string  `json:"numero_responsavel"`
	Idade             int     `json:"idade"`
	Sala              int     `json:"sala"`
	Observacoes       *string `json:"observacoes"`
	Ativa             bool    `json:"ativa"`
}
