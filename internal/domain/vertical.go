// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Vertical é o segmento de mercado de contratos, negociações, estratégias e equipe
type Vertical string

const (
	VerticalB2B       Vertical = "B2B"
	VerticalB2B2C     Vertical = "B2B2C"
	VerticalB2G       Vertical = "B2G"
	VerticalB2S       Vertical = "B2S"
	VerticalFranchise Vertical = "Franchise"

	// VerticalAll é usado por membros da equipe e necessidades que atendem todas as verticais
	VerticalAll Vertical = "all"
)

// Verticals lista as verticais na ordem de exibição
var Verticals = []Vertical{
	VerticalB2B,
	VerticalB2B2C,
	VerticalB2G,
	VerticalB2S,
	VerticalFranchise,
}

func (v Vertical) IsValid() bool {
	for _, vertical := range Verticals {
		if v == vertical {
			return true
		}
	}
	return false
}
