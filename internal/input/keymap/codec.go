package keymap

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidKeymap reports a keymap document that is not valid JSON
// or is missing required fields.
var ErrInvalidKeymap = errors.New("invalid keymap document")

// The document shape:
//
//	{
//	  "bindings": [{"chord": "primary+z", "command": "undo"}, ...],
//	  "platforms": {
//	    "mac": [{"chord": "meta+up", "command": "move-document-start"}]
//	  }
//	}

// DecodeJSON parses a keymap document into bindings.
func DecodeJSON(data []byte) ([]Binding, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidKeymap)
	}
	root := gjson.ParseBytes(data)

	var bindings []Binding
	var err error

	decodeEntry := func(v gjson.Result, platform Platform) bool {
		chord := v.Get("chord")
		command := v.Get("command")
		if !chord.Exists() || !command.Exists() {
			err = fmt.Errorf("%w: binding needs chord and command, got %s", ErrInvalidKeymap, v.Raw)
			return false
		}
		bindings = append(bindings, Binding{
			Chord:    chord.String(),
			Command:  command.String(),
			Platform: platform,
		})
		return true
	}

	root.Get("bindings").ForEach(func(_, v gjson.Result) bool {
		return decodeEntry(v, "")
	})
	if err != nil {
		return nil, err
	}

	root.Get("platforms").ForEach(func(k, v gjson.Result) bool {
		platform := ParsePlatform(k.String())
		v.ForEach(func(_, entry gjson.Result) bool {
			return decodeEntry(entry, platform)
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return bindings, nil
}

// EncodeJSON renders bindings as a keymap document. Portable bindings
// keep their order; platform overrides are grouped under their
// platform key.
func EncodeJSON(bindings []Binding) ([]byte, error) {
	doc := `{"bindings":[]}`
	var err error

	for _, b := range bindings {
		path := "bindings.-1"
		if b.Platform != "" {
			path = "platforms." + string(b.Platform) + ".-1"
		}
		entry := map[string]any{"chord": b.Chord, "command": b.Command}
		doc, err = sjson.Set(doc, path, entry)
		if err != nil {
			return nil, fmt.Errorf("encoding binding %q: %w", b.Chord, err)
		}
	}
	return []byte(doc), nil
}

// LoadFile reads a keymap document and installs its bindings into the
// table. Bindings for other platforms are skipped by Table.Add.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return t.LoadJSON(data)
}

// LoadJSON installs the bindings from a keymap document.
func (t *Table) LoadJSON(data []byte) error {
	bindings, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	for _, b := range bindings {
		if err := t.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile writes the table's current bindings as a keymap document.
func (t *Table) SaveFile(path string) error {
	data, err := EncodeJSON(t.Bindings())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap %s: %w", path, err)
	}
	return nil
}
