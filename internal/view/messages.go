package view

// Empty-state and framing messages shown in place of tables and lists
// when their source collections are empty. The wording is part of the
// data contract with the upstream dashboard and must not be reworded.
const (
	// MsgSelectDocument prompts for a document in the explorer.
	MsgSelectDocument = "Select a document to inspect its structure, compliance status, and terminology."

	// MsgDocCompliant is shown when a document fails no checked practice.
	MsgDocCompliant = "This document appears compliant with all checked best practices."

	// MsgDocHasIssues introduces the compliance-issue table.
	MsgDocHasIssues = "This document has compliance issues:"

	// MsgNoRelevantTerms is shown when no tracked term references the document.
	MsgNoRelevantTerms = "No specific tracked terms were listed for this document."

	// Terminology Hub sections.
	MsgNoGlossary           = "No glossary provided."
	MsgNoSynonyms           = "No synonym map provided."
	MsgNoFrequencies        = "No term frequency data provided."
	MsgNoInconsistencies    = "No terminology inconsistencies listed."
	MsgInconsistenciesFound = "The following terminology inconsistencies were noted:"

	// Compliance Dashboard sections.
	MsgNoComplianceData   = "No compliance data available."
	MsgNoCompliantDocs    = "No documents explicitly listed as compliant."
	MsgNoNonCompliantDocs = "No documents explicitly listed as non-compliant."

	// Redundancy & Gaps sections.
	MsgNoOverlaps     = "No specific topic overlaps were identified."
	MsgRedundantIntro = "The following potential redundancies were noted:"
	MsgNoRedundant    = "No specific examples of redundant content were provided."
	MsgMissingIntro   = "The following general information gaps were identified:"
	MsgNoMissing      = "No specific information gaps were listed."

	// Recommendations page.
	MsgRecommendationsIntro = "Based on the analysis, the following actions are recommended:"
	MsgNoRecommendations    = "No specific recommendations were provided in the data."
)
