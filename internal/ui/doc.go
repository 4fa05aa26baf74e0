// Package ui renders phiview's screens with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - RenderScreen: Pure renderer from a content.Screen to a styled string
//   - IndexView: Topic list; ReaderView: scrollable presentation of one screen
//   - OverlayStack: Modal views (help) with a dismiss key
//   - KeybindRegistry/KeyHandler: SPC-prefixed leader key sequences
package ui
