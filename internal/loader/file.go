package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/nao1215/doclens/internal/model"
	"gopkg.in/yaml.v3"
)

// orderedMap decodes a JSON or YAML mapping while recording key order.
//
// Design decision: encoding/json and yaml.v3 both hand back maps with
// undefined iteration order, but the data contract makes source key order
// significant (it is the stable tie-break for the term-frequency sort and
// keeps every table deterministic). Decoding through the token stream is
// the only way to recover it without a third-party ordered-map type.
type orderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// UnmarshalJSON decodes a JSON object, preserving first-seen key order.
// A JSON null leaves the map empty.
func (m *orderedMap[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // null
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	m.values = map[string]T{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}

		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.values[key] = v
	}

	_, err = dec.Token() // consume closing brace
	return err
}

// UnmarshalYAML decodes a YAML mapping, preserving first-seen key order.
func (m *orderedMap[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got YAML node kind %d", node.Kind)
	}

	m.values = map[string]T{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var v T
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.values[key] = v
	}
	return nil
}

// fileReport mirrors the report file's top-level object.
// Every key is optional; normalize applies the empty defaults.
type fileReport struct {
	DocumentStructure orderedMap[fileDocument] `json:"document_structure" yaml:"document_structure"`
	Terminology       fileTerminology          `json:"terminology_analysis" yaml:"terminology_analysis"`
	Compliance        orderedMap[filePractice] `json:"best_practices_compliance" yaml:"best_practices_compliance"`
	Redundancy        fileRedundancy           `json:"redundancy_and_gaps" yaml:"redundancy_and_gaps"`
	Recommendations   []string                 `json:"recommendations" yaml:"recommendations"`
	Summary           string                   `json:"summary" yaml:"summary"`
}

// fileDocument mirrors one document_structure record.
type fileDocument struct {
	Headings       map[string]int `json:"headings" yaml:"headings"`
	SectionLengths []int          `json:"section_lengths" yaml:"section_lengths"`
	Lists          bool           `json:"lists" yaml:"lists"`
	Tables         bool           `json:"tables" yaml:"tables"`
	FAQs           bool           `json:"faqs" yaml:"faqs"`
	Metadata       bool           `json:"metadata" yaml:"metadata"`
}

// fileTerminology mirrors the terminology_analysis section.
// Inconsistency records have no fixed schema, so they decode as generic
// maps and are stringified during normalization.
type fileTerminology struct {
	Terms           orderedMap[fileTerm] `json:"terms" yaml:"terms"`
	Glossary        orderedMap[string]   `json:"glossary" yaml:"glossary"`
	SynonymMap      orderedMap[[]string] `json:"synonym_map" yaml:"synonym_map"`
	Inconsistencies []map[string]any     `json:"inconsistencies" yaml:"inconsistencies"`
}

// fileTerm mirrors one tracked-term record.
type fileTerm struct {
	Frequency int      `json:"frequency" yaml:"frequency"`
	Documents []string `json:"documents" yaml:"documents"`
}

// filePractice mirrors one best_practices_compliance value.
// non_compliant entries are usually {file, reason} objects but are
// occasionally bare file-name strings, so they decode as any and are
// resolved once in normalize.
type filePractice struct {
	Compliant    []string `json:"compliant" yaml:"compliant"`
	NonCompliant []any    `json:"non_compliant" yaml:"non_compliant"`
}

// fileRedundancy mirrors the redundancy_and_gaps section.
type fileRedundancy struct {
	Overlaps           []fileOverlap `json:"overlaps" yaml:"overlaps"`
	RedundantContent   []string      `json:"redundant_content" yaml:"redundant_content"`
	MissingInformation []string      `json:"missing_information" yaml:"missing_information"`
}

// fileOverlap mirrors one overlap record.
type fileOverlap struct {
	Topic     string   `json:"topic" yaml:"topic"`
	Documents []string `json:"documents" yaml:"documents"`
}

// normalize converts the wire shapes into the model.Report contract:
// absent sections become empty collections, heading counts move to named
// fields, non_compliant variants collapse to NonCompliantEntry, and
// free-form records are stringified with sorted keys.
func (f *fileReport) normalize() *model.Report {
	report := model.NewReport()

	for _, name := range f.DocumentStructure.keys {
		doc := f.DocumentStructure.values[name]
		report.Documents.Names = append(report.Documents.Names, name)
		report.Documents.Records[name] = model.DocumentRecord{
			H1Count:        doc.Headings["H1"],
			H2Count:        doc.Headings["H2"],
			SectionLengths: doc.SectionLengths,
			HasLists:       doc.Lists,
			HasTables:      doc.Tables,
			HasFAQs:        doc.FAQs,
			HasMetadata:    doc.Metadata,
		}
	}

	for _, term := range f.Terminology.Terms.keys {
		t := f.Terminology.Terms.values[term]
		report.Terminology.TermOrder = append(report.Terminology.TermOrder, term)
		report.Terminology.Terms[term] = model.Term{
			Frequency: t.Frequency,
			Documents: t.Documents,
		}
	}
	for _, term := range f.Terminology.Glossary.keys {
		report.Terminology.GlossaryOrder = append(report.Terminology.GlossaryOrder, term)
		report.Terminology.Glossary[term] = f.Terminology.Glossary.values[term]
	}
	for _, term := range f.Terminology.SynonymMap.keys {
		report.Terminology.SynonymOrder = append(report.Terminology.SynonymOrder, term)
		report.Terminology.SynonymMap[term] = f.Terminology.SynonymMap.values[term]
	}
	for _, raw := range f.Terminology.Inconsistencies {
		report.Terminology.Inconsistencies = append(report.Terminology.Inconsistencies, normalizeRecord(raw))
	}

	for _, practice := range f.Compliance.keys {
		check := f.Compliance.values[practice]
		report.Compliance.Practices = append(report.Compliance.Practices, practice)

		normalized := model.PracticeCheck{Compliant: check.Compliant}
		for _, entry := range check.NonCompliant {
			normalized.NonCompliant = append(normalized.NonCompliant, normalizeNonCompliant(entry))
		}
		report.Compliance.Checks[practice] = normalized
	}

	for _, overlap := range f.Redundancy.Overlaps {
		report.Redundancy.Overlaps = append(report.Redundancy.Overlaps, model.Overlap{
			Topic:     overlap.Topic,
			Documents: overlap.Documents,
		})
	}
	report.Redundancy.RedundantContent = f.Redundancy.RedundantContent
	report.Redundancy.MissingInformation = f.Redundancy.MissingInformation

	report.Recommendations = f.Recommendations
	if f.Summary != "" {
		report.Summary = f.Summary
	}

	return report
}

// normalizeNonCompliant resolves the object-or-string variant into a
// single NonCompliantEntry. Unexpected shapes degrade to a best-effort
// record with reason "N/A" rather than failing the load.
func normalizeNonCompliant(entry any) model.NonCompliantEntry {
	switch v := entry.(type) {
	case map[string]any:
		file := stringifyScalar(v["file"])
		reason := stringifyScalar(v["reason"])
		if reason == "" {
			reason = model.ReasonNotSpecified
		}
		return model.NonCompliantEntry{File: file, Reason: reason}
	case string:
		return model.NonCompliantEntry{File: v, Reason: model.ReasonUnknownShape}
	default:
		return model.NonCompliantEntry{File: stringifyScalar(entry), Reason: model.ReasonUnknownShape}
	}
}

// normalizeRecord stringifies a free-form record and sorts its keys.
func normalizeRecord(raw map[string]any) model.Record {
	record := model.Record{Fields: map[string]string{}}
	for key, value := range raw {
		record.Keys = append(record.Keys, key)
		record.Fields[key] = stringifyScalar(value)
	}
	sort.Strings(record.Keys)
	return record
}

// stringifyScalar renders a decoded scalar for display.
// Whole floats print without a fractional part because JSON numbers
// decode as float64 even when the source wrote an integer.
func stringifyScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
