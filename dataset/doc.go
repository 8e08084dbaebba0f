// Package dataset reads entities from a CSV table.
//
// The first row is the header. One column holds the entity name, an optional
// second column its group (e.g. the season); every other column not listed as
// excluded is a numeric feature, in header order. Defaults match the NCAA
// team-season export: "Full Team Name", "Season", with "Seed" excluded, and
// entity IDs rendered as "Name (Season)".
//
// Cells that do not parse as numbers (or are missing on short rows) read as
// 0. Rows without a name, or whose features are all zero, are skipped.
package dataset
