// AngelaMos | 2026
// catalog.go

package sections

// CourseSection is one entry of the fixed training catalog. Sections
// are identical for every user and are not persisted.
type CourseSection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// Catalog is the ordered Infotravel training course. The IDs are
// referenced by progress, note and favorite records, so they must stay
// stable across releases.
var Catalog = []CourseSection{
	{ID: "introducao", Title: "Introdução ao Infotravel", Order: 1},
	{ID: "acesso", Title: "Acesso ao Sistema", Order: 2},
	{ID: "cadastro-clientes", Title: "Cadastro de Clientes", Order: 3},
	{ID: "orcamento", Title: "Sistema de Orçamento", Order: 4},
	{ID: "monte-pacote", Title: "Monte seu Pacote", Order: 5},
	{ID: "orcamento-web", Title: "Orçamento Web", Order: 6},
	{ID: "reservas", Title: "Gestão de Reservas", Order: 7},
	{ID: "pagamentos", Title: "Sistema de Pagamentos", Order: 8},
	{ID: "descontos", Title: "Descontos", Order: 9},
	{ID: "reservas-manuais", Title: "Reservas Manuais", Order: 10},
	{ID: "emissao-aereo", Title: "Emissão de Aéreo Nacional", Order: 11},
	{ID: "status-reservas", Title: "Status de Reservas Detalhado", Order: 12},
}

// Count returns the catalog size, the denominator for progress
// percentages.
func Count() int {
	return len(Catalog)
}

// Exists reports whether id names a catalog section.
func Exists(id string) bool {
	for _, s := range Catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
