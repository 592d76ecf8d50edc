package dto

import "github.com/shopspring/decimal"

// TypeTotalDTO total financeiro de um tipo de emenda no painel.
type TypeTotalDTO struct {
	Type       string          `json:"type"`
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"` // 0–100
}

// StatusCountDTO barra do histograma de status.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// GroupTotalDTO linha de ranking top-N (tipo, autor ou município).
type GroupTotalDTO struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// UrgencyItemDTO item da lista de urgência.
type UrgencyItemDTO struct {
	CaseID      string `json:"case_id"`
	SEI         string `json:"sei"`
	CurrentUnit string `json:"current_unit"`
	Category    string `json:"category"`   // CRITICO ou ATRASADO
	DaysDelta   int    `json:"days_delta"` // negativo = dias de atraso
}

// DashboardSummaryDTO resumo do painel gerencial.
type DashboardSummaryDTO struct {
	TotalCases      int              `json:"total_cases"`
	TotalsByType    []TypeTotalDTO   `json:"totals_by_type"`
	StatusHistogram []StatusCountDTO `json:"status_histogram"`
	TopGroups       []GroupTotalDTO  `json:"top_groups"`
	Urgency         []UrgencyItemDTO `json:"urgency"`
	OverdueCount    int              `json:"overdue_count"`
	CriticalCount   int              `json:"critical_count"`
}

// CalendarDayDTO célula do calendário de prazos.
type CalendarDayDTO struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Day      int      `json:"day"`
	CaseIDs  []string `json:"case_ids"`
	Severity string   `json:"severity"` // pior severidade do dia
}
