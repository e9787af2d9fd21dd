// Package model defines the data structures shared across the batch run:
// download options and option fragments, quality levels, categories, work
// items with their status machine, run results and extracted metadata.
package model
