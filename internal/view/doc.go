// Package view projects a model.Report into display models for the six
// dashboard pages: Overview, Document Explorer, Terminology Hub,
// Compliance Dashboard, Redundancy & Gaps, and Recommendations.
//
// Every projection is a pure function of the report (plus the selected
// document for the explorer). The interactive TUI and the non-interactive
// report writers both consume these display models, so the two surfaces
// cannot drift apart.
package view
