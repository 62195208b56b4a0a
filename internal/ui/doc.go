// Package ui is roster's Bubble Tea terminal interface.
//
// The Model owns a directory.Controller and the screen sink it renders into.
// Key presses become controller operations; View only reads the screen and
// the controller accessors, so the filter and cursor rules live in one place.
//
// Input is layered. The help overlay swallows the next key; the search box,
// once focused with "/", receives everything until esc or enter and calls
// OnQueryChanged on every edit; an open detail modal handles prev/next/close
// and "s" to save a vCard; otherwise keys move the gallery highlight and
// enter opens the highlighted card.
//
// The fetch runs as a tea.Cmd and its result is delivered back to Update as
// recordsLoadedMsg or loadFailedMsg, so the controller is only touched from
// the Update goroutine. The search bar is hidden until the load succeeds.
//
// Themes (Nightfox, Kanagawa, Slate) cycle with "T" and persist through
// internal/prefs.
package ui
