package service

import (
	"testing"

	"hufschlaeger.net/sonar-contacts-exporter/internal/domain/contacts"
	sonarDomain "hufschlaeger.net/sonar-contacts-exporter/internal/domain/sonar"
)

func entity(number, name string) sonarDomain.Entity {
	return sonarDomain.Entity{Number: &number, Contact: &sonarDomain.Contact{Name: &name}}
}

func TestEntityToRow(t *testing.T) {
	mapper := NewMapper()

	got := mapper.EntityToRow(entity("5551234", "Alice"))
	want := contacts.Row{Name: "Alice", Number: "5551234"}

	if got != want {
		t.Fatalf("EntityToRow() = %+v, want %+v", got, want)
	}
}

func TestEntitiesToRows_PreservesOrderAndCount(t *testing.T) {
	mapper := NewMapper()

	entities := []sonarDomain.Entity{
		entity("3", "Charlie"),
		entity("1", "Alice"),
		entity("1", "Alice"), // Duplikate bleiben erhalten
		entity("", ""),       // leere Werte bleiben erhalten
		entity("2", "Bob"),
	}

	rows := mapper.EntitiesToRows(entities)

	if len(rows) != len(entities) {
		t.Fatalf("expected %d rows, got %d", len(entities), len(rows))
	}
	for i, e := range entities {
		if rows[i].Number != e.GetNumber() || rows[i].Name != e.Contact.GetName() {
			t.Errorf("row %d = %+v, want number=%q name=%q", i, rows[i], e.GetNumber(), e.Contact.GetName())
		}
	}
}

func TestEntitiesToRows_Empty(t *testing.T) {
	rows := NewMapper().EntitiesToRows(nil)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestEntityToRow_NilContact(t *testing.T) {
	number := "42"
	row := NewMapper().EntityToRow(sonarDomain.Entity{Number: &number})
	if row.Number != "42" || row.Name != "" {
		t.Fatalf("unexpected row: %+v", row)
	}
}
