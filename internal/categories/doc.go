// Package categories loads named URL categories from YAML documents and from
// the legacy "# [Name]" plain-text format.
package categories
