package dto

import "time"

// UnitRequest corpo para criar/editar uma unidade.
// Name é imutável: em edições só DefaultSLADays e AnalysisType são aplicados.
type UnitRequest struct {
	Name           string `json:"name"`
	DefaultSLADays int    `json:"default_sla_days"`
	AnalysisType   string `json:"analysis_type"`
}

// UnitResponse unidade serializada.
type UnitResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DefaultSLADays int       `json:"default_sla_days"`
	AnalysisType   string    `json:"analysis_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StatusRequest corpo para criar/editar um status do fluxo.
type StatusRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsFinal  bool   `json:"is_final"`
	Position int    `json:"position"`
}

// StatusResponse status serializado.
type StatusResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	IsFinal  bool   `json:"is_final"`
	Position int    `json:"position"`
}
