package sonar

import "github.com/hasura/go-graphql-client"

// Name und Number sind Pointer, damit fehlende oder null-Werte
// von leeren Strings unterscheidbar bleiben.
type Contact struct {
	Name *string `json:"name"`
}

func (c *Contact) GetName() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return *c.Name
}

type Entity struct {
	Number  *string  `json:"number"`
	Contact *Contact `json:"contact"`
}

func (e Entity) GetNumber() string {
	if e.Number == nil {
		return ""
	}
	return *e.Number
}

type PageInfo struct {
	TotalPages *int64 `json:"total_pages"`
}

type PhoneNumbers struct {
	PageInfo *PageInfo `json:"page_info,omitempty"`
	Entities []Entity  `json:"entities,omitempty"`
}

type Data struct {
	PhoneNumbers *PhoneNumbers `json:"phone_numbers"`
}

// Root ist der Umschlag jeder Antwort der Sonar GraphQL API.
// Pointer-Felder unterscheiden fehlende von leeren Werten.
type Root struct {
	Data   *Data          `json:"data"`
	Errors graphql.Errors `json:"errors,omitempty"`
}
