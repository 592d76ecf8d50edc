package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

// CreateCaseRequest corpo para registrar um processo.
type CreateCaseRequest struct {
	SEI          string          `json:"sei"`
	Type         string          `json:"type"`
	Value        decimal.Decimal `json:"value"`
	Municipality string          `json:"municipality"`
	AuthorName   string          `json:"author_name"`
	Object       string          `json:"object"`
	Status       string          `json:"status"` // vazio = primeiro status configurado
}

// TransitionRequest corpo para tramitar um processo.
type TransitionRequest struct {
	DestinationUnitIDs []string `json:"destination_unit_ids"`
	NewStatus          string   `json:"new_status"`
	Priority           string   `json:"priority"` // NORMAL, URGENTE, URGENTISSIMO
	Remarks            string   `json:"remarks"`
}

// MovementEditRequest uma movimentação do histórico reescrito.
type MovementEditRequest struct {
	ID        string     `json:"id"`
	FromUnit  string     `json:"from_unit"`
	ToUnit    string     `json:"to_unit"`
	DateIn    time.Time  `json:"date_in"`
	DateOut   *time.Time `json:"date_out"`
	HandledBy string     `json:"handled_by"`
	Remarks   string     `json:"remarks"`
}

// RetroactiveEditRequest corpo da edição retroativa (privilegiada).
type RetroactiveEditRequest struct {
	Movements   []MovementEditRequest `json:"movements"`
	Finalizing  bool                  `json:"finalizing"`
	FinalStatus string                `json:"final_status"`
	Confirmed   bool                  `json:"confirmed"`
}

// DeleteCaseRequest corpo da exclusão justificada.
type DeleteCaseRequest struct {
	Justification string `json:"justification"`
}

// MovementResponse movimentação serializada.
type MovementResponse struct {
	ID           string     `json:"id"`
	FromUnit     string     `json:"from_unit,omitempty"`
	ToUnit       string     `json:"to_unit"`
	DateIn       time.Time  `json:"date_in"`
	DateOut      *time.Time `json:"date_out,omitempty"`
	Deadline     time.Time  `json:"deadline"`
	DaysSpent    int        `json:"days_spent"`
	HandledBy    string     `json:"handled_by,omitempty"`
	Remarks      string     `json:"remarks,omitempty"`
	AnalysisType string     `json:"analysis_type,omitempty"`
}

// CaseResponse processo serializado.
type CaseResponse struct {
	ID           string             `json:"id"`
	SEI          string             `json:"sei"`
	Type         string             `json:"type"`
	Value        decimal.Decimal    `json:"value"`
	Municipality string             `json:"municipality"`
	AuthorName   string             `json:"author_name"`
	Object       string             `json:"object"`
	Status       string             `json:"status"`
	CurrentUnit  string             `json:"current_unit,omitempty"`
	Movements    []MovementResponse `json:"movements"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ToCaseResponse converte a entidade para o DTO de resposta.
func ToCaseResponse(c *entity.Case) CaseResponse {
	movs := make([]MovementResponse, 0, len(c.Movements))
	for _, m := range c.Movements {
		movs = append(movs, MovementResponse{
			ID:           m.ID,
			FromUnit:     m.FromUnit,
			ToUnit:       m.ToUnit,
			DateIn:       m.DateIn,
			DateOut:      m.DateOut,
			Deadline:     m.Deadline,
			DaysSpent:    m.DaysSpent,
			HandledBy:    m.HandledBy,
			Remarks:      m.Remarks,
			AnalysisType: m.AnalysisType,
		})
	}
	return CaseResponse{
		ID:           c.ID,
		SEI:          c.SEI,
		Type:         c.Type,
		Value:        c.Value,
		Municipality: c.Municipality,
		AuthorName:   c.AuthorName,
		Object:       c.Object,
		Status:       c.Status,
		CurrentUnit:  c.CurrentUnit,
		Movements:    movs,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
