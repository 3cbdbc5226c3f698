package rag

import (
	"fmt"
	"strings"

	"sentencias-rag/internal/retrieval"
)

// NoResultsSentinel is returned by BuildContext when retrieval produced
// nothing. Downstream consumers and tests rely on it being distinguishable
// from a real content block.
const NoResultsSentinel = "(No se encontraron sentencias relevantes.)"

// maxResuelveChars bounds the holding text per ruling so a handful of long
// rulings cannot blow up the generative model input.
const maxResuelveChars = 1500

// truncationMarker is appended when a holding text is cut off.
const truncationMarker = "..."

// BuildContext converts retrieval results into the context block fed to the
// generative model: one block per ruling, 1-indexed, joined by blank lines.
// Optional fields are omitted rather than emitted empty.
func BuildContext(records []retrieval.Record) string {
	if len(records) == 0 {
		return NoResultsSentinel
	}

	blocks := make([]string, 0, len(records))
	for i, rec := range records {
		var b strings.Builder
		fmt.Fprintf(&b, "--- Sentencia %d (Providencia: %s, Fecha: %s) ---\n", i+1, rec.Providencia(), rec.Fecha())
		if tema := rec.Tema(); tema != "" {
			fmt.Fprintf(&b, "Tema: %s\n", tema)
		}
		if sintesis := rec.Sintesis(); sintesis != "" {
			fmt.Fprintf(&b, "Síntesis: %s\n", sintesis)
		}
		if resuelve := rec.Resuelve(); resuelve != "" {
			fmt.Fprintf(&b, "Resuelve: %s", truncate(resuelve, maxResuelveChars))
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}

// truncate hard-cuts s to max characters, appending the truncation marker
// when anything was cut. Counted in runes: the corpus is Spanish and a byte
// cut could split a UTF-8 sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}
