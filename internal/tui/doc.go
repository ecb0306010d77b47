// Package tui hosts reveal animations in a bubbletea program.
//
// Component layout:
//
//   - [Model]: page model, key handling, message routing
//   - host.go: turns reveal effects into tea.Cmds
//   - view.go: static and overlay layers, blinking caret
//   - [Theme]: color themes and derived styles
package tui
