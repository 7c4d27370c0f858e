package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"hufschlaeger.net/sonar-contacts-exporter/internal/domain/contacts"
)

// FileError wird geliefert, wenn die CSV-Datei nicht geschrieben werden kann.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("datei-Export nach %s fehlgeschlagen: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// WriteContactsCSV schreibt Header und Zeilen nach path.
// Die Datei wird erst nach erfolgreichem Flush ersetzt, eine bestehende
// Datei bleibt bei Fehlern unverändert.
func WriteContactsCSV(path string, rows []contacts.Row) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	writer := csv.NewWriter(tmp)

	if err = writer.Write(contacts.Header); err != nil {
		return &FileError{Path: path, Err: err}
	}
	for _, row := range rows {
		if err = writer.Write(row.Record()); err != nil {
			return &FileError{Path: path, Err: err}
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return &FileError{Path: path, Err: err}
	}

	if err = tmp.Chmod(0o644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &FileError{Path: path, Err: err}
	}

	return nil
}
