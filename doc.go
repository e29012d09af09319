// Package moonicon renders the crescent-moon icon set used by the
// browser extension.
//
// # Overview
//
// An icon is a square pixmap with a vertical purple gradient, a white
// disc in the middle, and a second disc in a contrasting color that
// covers most of the first, leaving a crescent. Icons of 48 pixels and
// up also get a faint rim along the moon's edge.
//
// # Quick Start
//
//	pm, err := moonicon.Render(128)
//	if err != nil {
//	    return err
//	}
//	err = pm.SavePNG("icon128.png")
//
// Or write the whole manifest set (16, 48 and 128 pixels) at once:
//
//	results, err := moonicon.Generate("icons")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Pixel (i, j) covers [i, i+1) x [j, j+1)
//
// # Determinism
//
// Rendering uses no randomness, clocks, or concurrency, so the same size
// and options always produce byte-identical PNG files.
package moonicon

//go:generate go run ./cmd/moonicons
