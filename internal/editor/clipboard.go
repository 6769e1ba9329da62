package editor

import "fmt"

// copySelection hands the selected text to the clipboard provider.
// The document does not change.
func (e *Editor) copySelection() error {
	sel, ok := e.cur.Selection()
	if !ok {
		return ErrNoSelection
	}
	text := e.buf.TextRange(sel.Start(), sel.End())
	if err := e.clip.SetText(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// cutSelection copies the selection and then deletes it.
func (e *Editor) cutSelection() error {
	if err := e.copySelection(); err != nil {
		return err
	}
	return e.deleteSelection()
}

// paste inserts the clipboard content at the cursor, replacing the
// active selection. Empty clipboard content is a no-op.
func (e *Editor) paste() error {
	text, err := e.clip.GetText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	return e.insert(text)
}
