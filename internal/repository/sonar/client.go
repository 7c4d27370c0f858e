package sonar

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"hufschlaeger.net/sonar-contacts-exporter/internal/config"
	sonarDomain "hufschlaeger.net/sonar-contacts-exporter/internal/domain/sonar"
	"hufschlaeger.net/sonar-contacts-exporter/internal/logging"
	"hufschlaeger.net/sonar-contacts-exporter/pkg/utils"
)

const (
	countQueryName    = "count"
	entitiesQueryName = "entities"
)

type Repository struct {
	config *config.Config
	client *resty.Client
	log    zerolog.Logger
}

type graphQLRequest struct {
	Query string `json:"query"`
}

func NewRepository(cfg *config.Config) *Repository {
	log := logging.NewLogger("sonar")

	httpClient := &http.Client{
		Transport: &authTransport{
			apiKey: cfg.APIKey,
			base:   http.DefaultTransport,
		},
	}

	// Die Sonar API erwartet GET mit JSON-Body. Keine Wiederholungen.
	client := resty.NewWithClient(httpClient).
		SetAllowGetMethodPayload(true).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetLogger(restyLogger{log: log})

	return &Repository{
		config: cfg,
		client: client,
		log:    log,
	}
}

// Execute schickt eine GraphQL-Query und liefert den Response-Body als Text.
func (r *Repository) Execute(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("query nicht serialisierbar: %w", err)
	}

	r.log.Debug().Str("url", r.config.URL).Str("query", query).Msg("sende GraphQL-Anfrage")

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(body).
		Get(r.config.URL)
	if err != nil {
		return "", &TransportError{URL: r.config.URL, Err: err}
	}

	if resp.IsError() {
		r.log.Warn().
			Int("status_code", resp.StatusCode()).
			Str("body", utils.TruncateText(resp.String(), 200)).
			Msg("Sonar API antwortet mit Fehlerstatus")
	} else {
		r.log.Debug().Int("status_code", resp.StatusCode()).Dur("duration", resp.Time()).Msg("antwort erhalten")
	}

	return resp.String(), nil
}

// CountPhoneNumbers ermittelt die Anzahl aller Rufnummern.
// Bei records_per_page = 1 entspricht total_pages der Gesamtzahl der Datensätze.
func (r *Repository) CountPhoneNumbers(ctx context.Context) (int, error) {
	body, err := r.Execute(ctx, buildCountQuery())
	if err != nil {
		return 0, err
	}

	root, err := decodeRoot(countQueryName, body)
	if err != nil {
		return 0, err
	}

	if root.Data == nil {
		return 0, &DecodeError{Query: countQueryName, Message: "data fehlt"}
	}
	if root.Data.PhoneNumbers == nil {
		return 0, &DecodeError{Query: countQueryName, Message: "data.phone_numbers fehlt"}
	}
	pageInfo := root.Data.PhoneNumbers.PageInfo
	if pageInfo == nil || pageInfo.TotalPages == nil {
		return 0, &DecodeError{Query: countQueryName, Message: "data.phone_numbers.page_info.total_pages fehlt"}
	}
	if *pageInfo.TotalPages < 0 {
		return 0, &DecodeError{Query: countQueryName, Message: fmt.Sprintf("total_pages ist negativ (%d)", *pageInfo.TotalPages)}
	}

	return int(*pageInfo.TotalPages), nil
}

// GetPhoneNumbers lädt count Rufnummern auf einer einzigen Seite.
func (r *Repository) GetPhoneNumbers(ctx context.Context, count int) ([]sonarDomain.Entity, error) {
	body, err := r.Execute(ctx, buildEntitiesQuery(count))
	if err != nil {
		return nil, err
	}

	root, err := decodeRoot(entitiesQueryName, body)
	if err != nil {
		return nil, err
	}

	if root.Data == nil {
		return nil, &DecodeError{Query: entitiesQueryName, Message: "data fehlt"}
	}
	if root.Data.PhoneNumbers == nil {
		return nil, &DecodeError{Query: entitiesQueryName, Message: "data.phone_numbers fehlt"}
	}

	entities := root.Data.PhoneNumbers.Entities
	if entities == nil {
		return nil, &DecodeError{Query: entitiesQueryName, Message: "data.phone_numbers.entities fehlt"}
	}
	for i, entity := range entities {
		if entity.Number == nil {
			return nil, &DecodeError{Query: entitiesQueryName, Message: fmt.Sprintf("entities[%d].number fehlt", i)}
		}
		if entity.Contact == nil {
			return nil, &DecodeError{Query: entitiesQueryName, Message: fmt.Sprintf("entities[%d].contact fehlt", i)}
		}
		if entity.Contact.Name == nil {
			return nil, &DecodeError{Query: entitiesQueryName, Message: fmt.Sprintf("entities[%d].contact.name fehlt", i)}
		}
	}

	return entities, nil
}

// Private helper methods

func buildCountQuery() string {
	return utils.CompactQuery(`{
        phone_numbers(paginator: {page: 1, records_per_page: 1}) {
            page_info {
                total_pages
            }
        }
    }`)
}

func buildEntitiesQuery(count int) string {
	return utils.CompactQuery(fmt.Sprintf(`{
        phone_numbers(paginator: {page: 1, records_per_page: %d}) {
            entities {
                number
                contact {
                    name
                }
            }
        }
    }`, count))
}

func decodeRoot(queryName, body string) (*sonarDomain.Root, error) {
	var root sonarDomain.Root
	if err := json.Unmarshal([]byte(body), &root); err != nil {
		return nil, &DecodeError{Query: queryName, Message: "JSON nicht lesbar", Err: err}
	}

	if len(root.Errors) > 0 {
		return nil, &DecodeError{Query: queryName, Message: "GraphQL errors", Err: root.Errors}
	}

	return &root, nil
}
