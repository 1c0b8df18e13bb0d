package entity

// Requirement es el registro de requerimiento devuelto por la consulta externa
// al SEACE/OSCE. Solo se usa para prellenar la referencia documental del
// proceso; los fallos de la consulta son no fatales.
type Requirement struct {
	Number      string
	Year        int
	EntityName  string
	Description string
	DocumentRef string
}
