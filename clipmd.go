// Package clipmd extracts the main readable content of a web page, converts
// it to Markdown, and places the Markdown on the system clipboard.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package clipmd
