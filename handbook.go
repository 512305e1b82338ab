// Package handbook provides in-page search and reading support for static
// documentation handbooks. It extracts content blocks from a page, indexes
// them once for case-insensitive substring search, and tracks which blocks a
// reader has visited.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, goldmark/).
package handbook
