// Package status implements the single-slot status notification shown to the user.
// Every Show call replaces the previous notification; nothing is queued.
package status

import (
	"sync"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

// Presenter displays the current status notification
type Presenter interface {
	Show(severity models.Severity, message string)
}

// Slot keeps the last notification in memory
type Slot struct {
	mu      sync.RWMutex
	current models.Notification
	visible bool
}

// NewSlot creates an empty, hidden slot
func NewSlot() *Slot {
	return &Slot{}
}

// Show replaces the slot content and makes it visible
func (s *Slot) Show(severity models.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = models.Notification{Severity: severity, Message: message}
	s.visible = true
}

// Current returns the visible notification, if any
func (s *Slot) Current() (models.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.visible
}

// MultiPresenter forwards every notification to each presenter in order
type MultiPresenter []Presenter

// Show implements Presenter
func (m MultiPresenter) Show(severity models.Severity, message string) {
	for _, p := range m {
		p.Show(severity, message)
	}
}
