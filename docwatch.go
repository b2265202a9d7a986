// Package docwatch monitors a fixed set of external documentation sources
// (syndication feeds and rendered web pages), detects when their content
// changes between runs, and produces a structured change-set that a report
// stage turns into human-readable output.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, gemini/).
package docwatch
