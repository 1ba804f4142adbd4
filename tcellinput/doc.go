// Package tcellinput feeds tcell screen events into a tuikit.Session.
//
// It is the alternate byte source for hosts that already drive the terminal
// through tcell: tcell does the decoding, Translator maps its events onto
// tuikit's normalized key, mouse and resize events, and Run pumps them into
// the session's dispatcher and focus manager.
package tcellinput
