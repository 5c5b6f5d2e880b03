// Package tui is the interactive terminal front end. It adapts keyboard,
// mouse and resize events from bubbletea into session transitions and
// draws each frame with the render package.
package tui
