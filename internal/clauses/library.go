// Package clauses holds the fixed legal text inserted into documents.
//
// Clause bodies are opaque. The only templating is a document-wide
// substitution of {{PLACEHOLDER}} markers with party and vehicle names.
package clauses

import (
	"fmt"
	"strings"
)

const (
	Seller       = "{{VENDEDOR}}"
	Buyer        = "{{COMPRADOR}}"
	VehicleName  = "{{VEHICULO}}"
	Plate        = "{{MATRICULA}}"
	VIN          = "{{BASTIDOR}}"
	Deadline     = "{{FECHA_LIMITE}}"
	DepositValue = "{{IMPORTE_SENAL}}"
)

type Clause struct {
	Number int
	Title  string
	Body   string
}

// Heading renders "PRIMERA.- OBJETO" style headings.
func (c Clause) Heading() string {
	return fmt.Sprintf("%s.- %s", Ordinal(c.Number), strings.ToUpper(c.Title))
}

var ordinals = [...]string{
	"PRIMERA", "SEGUNDA", "TERCERA", "CUARTA", "QUINTA",
	"SEXTA", "SÉPTIMA", "OCTAVA", "NOVENA", "DÉCIMA",
	"UNDÉCIMA", "DUODÉCIMA",
}

// Ordinal returns the feminine Spanish ordinal used for clause numbering,
// falling back to digits past the named range.
func Ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return fmt.Sprintf("%dª", n)
}

// Substitutions maps placeholders to their document values.
type Substitutions map[string]string

func (s Substitutions) Replacer() *strings.Replacer {
	pairs := make([]string, 0, len(s)*2)
	for _, key := range []string{Seller, Buyer, VehicleName, Plate, VIN, Deadline, DepositValue} {
		if value, ok := s[key]; ok {
			pairs = append(pairs, key, value)
		}
	}
	return strings.NewReplacer(pairs...)
}

// Apply returns the clauses with placeholders replaced. The input is not modified.
func Apply(list []Clause, subs Substitutions) []Clause {
	r := subs.Replacer()
	out := make([]Clause, len(list))
	for i, c := range list {
		out[i] = Clause{Number: c.Number, Title: c.Title, Body: r.Replace(c.Body)}
	}
	return out
}

func Purchase() []Clause {
	return clone(purchaseClauses)
}

func DepositClauses() []Clause {
	return clone(depositClauses)
}

func clone(list []Clause) []Clause {
	out := make([]Clause, len(list))
	copy(out, list)
	return out
}
