package sonar

import (
	"fmt"
)

// TransportError wird bei Verbindungs-, TLS- oder Abbruchfehlern geliefert.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("anfrage an %s fehlgeschlagen: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wird geliefert, wenn die Antwort nicht die erwartete Struktur hat.
type DecodeError struct {
	Query   string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s-Antwort ungültig: %s: %v", e.Query, e.Message, e.Err)
	}
	return fmt.Sprintf("%s-Antwort ungültig: %s", e.Query, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
