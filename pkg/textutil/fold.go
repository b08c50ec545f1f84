package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var folder = cases.Fold()

// FoldSearch normaliza un término de búsqueda: recorta espacios y aplica case folding
// Unicode (maneja mayúsculas acentuadas del español: Á -> á, etc.).
func FoldSearch(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// TitleES capitaliza un texto según las reglas del español (para nombres en PDFs).
func TitleES(s string) string {
	return cases.Title(language.Spanish).String(strings.TrimSpace(s))
}
