package view

import (
	"sort"
	"strings"

	"github.com/nao1215/doclens/internal/model"
)

// Terminology is the display model for the Terminology Hub page.
// The four sections are independent; each renders its own empty state
// when its slice is empty.
type Terminology struct {
	// Glossary holds (term, definition) rows in source order.
	Glossary []GlossaryEntry

	// Synonyms holds (term, joined synonyms) rows in source order.
	Synonyms []SynonymEntry

	// Frequencies holds (term, frequency) rows sorted descending by
	// frequency. Ties keep their source order.
	Frequencies []FrequencyEntry

	// Inconsistencies is the free-form inconsistency table.
	Inconsistencies Table
}

// GlossaryEntry is one glossary row.
type GlossaryEntry struct {
	Term       string
	Definition string
}

// SynonymEntry is one synonym-map row with synonyms joined by ", ".
type SynonymEntry struct {
	Term     string
	Synonyms string
}

// FrequencyEntry is one term-frequency row.
type FrequencyEntry struct {
	Term      string
	Frequency int
}

// Table is a generic tabular display of free-form records.
// Columns is the sorted union of all record keys; cells for keys a
// record lacks are empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ProjectTerminology builds the Terminology Hub page model.
func ProjectTerminology(r *model.Report) Terminology {
	t := r.Terminology

	out := Terminology{}

	for _, term := range t.GlossaryOrder {
		out.Glossary = append(out.Glossary, GlossaryEntry{
			Term:       term,
			Definition: t.Glossary[term],
		})
	}

	for _, term := range t.SynonymOrder {
		out.Synonyms = append(out.Synonyms, SynonymEntry{
			Term:     term,
			Synonyms: strings.Join(t.SynonymMap[term], ", "),
		})
	}

	for _, term := range t.TermOrder {
		out.Frequencies = append(out.Frequencies, FrequencyEntry{
			Term:      term,
			Frequency: t.Terms[term].Frequency,
		})
	}
	// Stable sort: equal frequencies keep their source order.
	sort.SliceStable(out.Frequencies, func(i, j int) bool {
		return out.Frequencies[i].Frequency > out.Frequencies[j].Frequency
	})

	out.Inconsistencies = projectRecords(t.Inconsistencies)

	return out
}

// projectRecords flattens free-form records into a single table whose
// column set is the sorted union of all record keys.
func projectRecords(records []model.Record) Table {
	if len(records) == 0 {
		return Table{}
	}

	seen := map[string]bool{}
	var columns []string
	for _, record := range records {
		for _, key := range record.Keys {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)

	table := Table{Columns: columns}
	for _, record := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = record.Fields[column]
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
