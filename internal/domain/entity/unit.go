package entity

import "time"

// Unit configuração de uma unidade receptora de processos.
// Name é imutável após a criação; só DefaultSLADays e AnalysisType
// podem ser editados depois.
type Unit struct {
	ID             string
	TenantID       string
	Name           string // único por tenant
	DefaultSLADays int    // prazo em dias corridos, sempre positivo
	AnalysisType   string // casado contra StatusDef.Name para sugerir o próximo status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
