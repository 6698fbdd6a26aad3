// Package textdebug provides a thread-aware, singleton-based registry for text
// layout debug overlay options. Views that can paint debug overlays (baselines,
// frame/line/run/glyph bounds) attach themselves to the registry; installing a
// new shared DebugOption fans the value out to every attached view so the whole
// UI flips its overlays in one call.
package textdebug
