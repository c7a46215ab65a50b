// Package textutil normalização de texto para busca.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dobrador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Dobrar remove acentos e baixa a caixa, para comparação insensível a
// diacríticos ("João" -> "joao").
func Dobrar(s string) string {
	out, _, err := transform.String(dobrador, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contem indica se alvo contém busca, ambos dobrados.
func Contem(alvo, busca string) bool {
	return strings.Contains(Dobrar(alvo), Dobrar(busca))
}
