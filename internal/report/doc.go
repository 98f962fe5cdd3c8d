// Package report serializes resolution results and reads job files.
//
// A Report is the YAML record of one run: the document and schema it used,
// one assignment per expected field and the diagnostics raised. WriteCSV
// renders the same assignments as a two-row table. A Job bundles the inputs
// of a run so it can be repeated with "docfield-mapper run".
package report
