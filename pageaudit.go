// Package pageaudit provides a batch content auditing tool for websites.
// It reads sitemaps, fetches the pre-rendered static mirror of every listed
// page, extracts titles, descriptions, headings and visible words, and
// appends one row per page to a tabular output file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package pageaudit
