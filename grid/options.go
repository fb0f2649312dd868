// SPDX-License-Identifier: MIT

// Package grid: functional configuration for text rendering.
// This file defines:
//   - RenderOption (functional option over unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherRenderOptions, which applies options in order (last writer wins).
//
// WriteTo and String always use the defaults; Render accepts options.

package grid

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnSeparator separates elements within a row.
	DefaultColumnSeparator = " "

	// DefaultRowSeparator separates rows. No separator follows the last row.
	DefaultRowSeparator = "\n"

	// DefaultElementFormat is the fmt verb used for each element.
	DefaultElementFormat = "%v"
)

// ---------- Internal panic messages ----------

const (
	panicElementFormatInvalid = "grid: WithElementFormat: format must start with '%'"
)

// RenderOption mutates render options. Safe to apply repeatedly.
type RenderOption func(*renderOptions)

// renderOptions is the effective rendering configuration.
type renderOptions struct {
	colSep string // DefaultColumnSeparator
	rowSep string // DefaultRowSeparator
	format string // DefaultElementFormat
}

// WithColumnSeparator sets the string written between two elements of a row.
func WithColumnSeparator(sep string) RenderOption {
	return func(o *renderOptions) { o.colSep = sep }
}

// WithRowSeparator sets the string written between two rows.
func WithRowSeparator(sep string) RenderOption {
	return func(o *renderOptions) { o.rowSep = sep }
}

// WithElementFormat sets the fmt format used for each element, e.g. "%3d".
// Panics if format does not start with '%'.
func WithElementFormat(format string) RenderOption {
	if !strings.HasPrefix(format, "%") {
		panic(panicElementFormatInvalid)
	}

	return func(o *renderOptions) { o.format = format }
}

// gatherRenderOptions resolves user options over the documented defaults.
func gatherRenderOptions(user ...RenderOption) renderOptions {
	o := renderOptions{
		colSep: DefaultColumnSeparator,
		rowSep: DefaultRowSeparator,
		format: DefaultElementFormat,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
