package service

import (
	"hufschlaeger.net/sonar-contacts-exporter/internal/domain/contacts"
	sonarDomain "hufschlaeger.net/sonar-contacts-exporter/internal/domain/sonar"
)

type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// EntitiesToRows erzeugt pro Entity genau eine Zeile, in Antwort-Reihenfolge.
// Es wird weder sortiert, gefiltert noch dedupliziert.
func (m *Mapper) EntitiesToRows(entities []sonarDomain.Entity) []contacts.Row {
	rows := make([]contacts.Row, 0, len(entities))

	for _, entity := range entities {
		rows = append(rows, m.EntityToRow(entity))
	}

	return rows
}

// EntityToRow konvertiert eine Sonar Entity zu einer CSV-Zeile
func (m *Mapper) EntityToRow(entity sonarDomain.Entity) contacts.Row {
	return contacts.Row{
		Name:   entity.Contact.GetName(),
		Number: entity.GetNumber(),
	}
}
