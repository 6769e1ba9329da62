// Package clipboard abstracts the host clipboard behind a small
// provider interface so the editor core never talks to the OS
// directly.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Provider supplies clipboard text to and from the editor.
type Provider interface {
	// GetText returns the current clipboard content.
	GetText() (string, error)

	// SetText replaces the clipboard content.
	SetText(text string) error
}

// systemProvider is backed by the OS clipboard.
type systemProvider struct{}

// System returns a provider backed by the OS clipboard.
func System() Provider {
	return systemProvider{}
}

func (systemProvider) GetText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return text, nil
}

func (systemProvider) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process provider for tests and headless hosts.
type Memory struct {
	text string
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetText() (string, error) {
	return m.text, nil
}

func (m *Memory) SetText(text string) error {
	m.text = text
	return nil
}
