package contacts

// Header ist die Kopfzeile der CSV-Datei
var Header = []string{"number", "name"}

// Row ist ein Paar aus Kontaktname und Rufnummer.
type Row struct {
	Name   string
	Number string
}

// Record liefert die CSV-Spalten in Header-Reihenfolge
func (r Row) Record() []string {
	return []string{r.Number, r.Name}
}
