package entity

import "time"

// Movement representa uma estadia do processo em uma unidade organizacional.
// O array Movements do Case é o dono; CaseID é só referência reversa.
type Movement struct {
	ID           string
	CaseID       string
	FromUnit     string     // vazio na primeira movimentação
	ToUnit       string
	DateIn       time.Time
	DateOut      *time.Time // nil enquanto o processo permanece na unidade
	Deadline     time.Time  // DateIn + prazo SLA da unidade de destino
	DaysSpent    int        // autoritativo só quando DateOut está preenchido
	HandledBy    string
	Remarks      string // texto livre; pode carregar o prefixo de prioridade
	AnalysisType string // copiado da configuração da unidade no momento da tramitação
}

// Open informa se o processo ainda está nesta unidade (sem data de saída).
func (m *Movement) Open() bool {
	return m.DateOut == nil
}
