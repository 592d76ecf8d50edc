// Package workflow concentra a regra de trava por status final, compartilhada
// pelo motor de tramitação, pelos handlers HTTP e pela edição retroativa.
package workflow

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

// StatusEmpenhoLiquidacao status legado sempre tratado como final,
// independentemente do flag configurado. Caso histórico preservado do fluxo
// original; manter como constante única em vez de repetir a string.
const StatusEmpenhoLiquidacao = "EMPENHO / LIQUIDAÇÃO"

// IsLocked informa se o processo está travado: o status casa com um StatusDef
// marcado IsFinal, ou é o status legado de empenho/liquidação. Toda operação
// mutadora (exceto o caminho confirmado da edição retroativa) consulta este
// predicado antes de gravar e recusa quando ele é verdadeiro.
func IsLocked(c *entity.Case, statusDefs []entity.StatusDef) bool {
	if c == nil {
		return false
	}
	if SameName(c.Status, StatusEmpenhoLiquidacao) {
		return true
	}
	for i := range statusDefs {
		if SameName(statusDefs[i].Name, c.Status) {
			return statusDefs[i].IsFinal
		}
	}
	return false
}

// FindStatus localiza um StatusDef pelo nome (casamento normalizado).
// Devolve nil quando o status não está configurado.
func FindStatus(name string, statusDefs []entity.StatusDef) *entity.StatusDef {
	for i := range statusDefs {
		if SameName(statusDefs[i].Name, name) {
			return &statusDefs[i]
		}
	}
	return nil
}

// SameName compara rótulos de status/unidade ignorando caixa, acentos e
// espaços nas pontas. Os rótulos são texto livre casado contra a
// configuração, então "Em Tramitação" e "em tramitacao" precisam casar.
func SameName(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}
