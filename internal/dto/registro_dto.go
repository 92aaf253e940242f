package dto

import "encoding/json"

type RegistroRequest struct {
	CriancaID string `json:"crianca_id" validate:"required,uuid"`
}

// EstatisticasResponse keys mirror the dashboard contract.
type EstatisticasResponse struct {
	TotalCriancasCadastradas int64 `json:"totalCriancasCadastradas"`
	TotalPresentesHoje       int   `json:"totalPresentesHoje"`
	TotalCheckInsHoje        int   `json:"totalCheckInsHoje"`
	TotalCheckOutsHoje       int   `json:"totalCheckOutsHoje"`
}

// RelatorioDiaResponse wraps the raw JSON produced by the get_daily_report
// database function; the application does not reinterpret it.
type RelatorioDiaResponse struct {
	Relatorio json.RawMessage `json:"relatorio"`
}
