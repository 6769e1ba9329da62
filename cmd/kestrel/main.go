// Package main is a terminal frontend for the kestrel editing engine.
// It wires a tcell key source through the shortcut table into the
// editor and renders the document after every command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrel-edit/kestrel/internal/clipboard"
	"github.com/kestrel-edit/kestrel/internal/config"
	"github.com/kestrel-edit/kestrel/internal/editor"
	"github.com/kestrel-edit/kestrel/internal/input/key"
	"github.com/kestrel-edit/kestrel/internal/input/keymap"
	"github.com/kestrel-edit/kestrel/internal/input/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default $KESTREL_CONFIG or kestrel.yaml)")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	table, err := cfg.BuildKeymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	opts := []editor.Option{
		editor.WithClipboard(clipboard.System()),
		editor.WithUndoDepth(cfg.UndoDepth),
		editor.WithPageSize(cfg.PageSize),
	}

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", path, err)
			return 1
		}
		opts = append(opts, editor.WithText(string(data)))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer screen.Fini()

	app := &app{
		screen: screen,
		editor: editor.New(opts...),
		table:  table,
		path:   path,
	}
	app.loop()
	return 0
}

type app struct {
	screen tcell.Screen
	editor *editor.Editor
	table  *keymap.Table
	path   string
	status string

	// prompt collects input for the find command.
	prompting bool
	prompt    []rune
}

func (a *app) loop() {
	for {
		a.draw()
		ev, ok := a.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}

		// Frontend-level chords that never reach the editor.
		if ev.Key() == tcell.KeyCtrlQ {
			return
		}
		if ev.Key() == tcell.KeyCtrlS && a.path != "" {
			a.save()
			continue
		}

		kev, ok := term.Convert(ev)
		if !ok {
			continue
		}

		if a.prompting {
			a.handlePrompt(kev)
			continue
		}

		result := a.table.Resolve(kev)
		switch result.Kind {
		case keymap.ResolvedCommand:
			if result.Command == "find" {
				a.prompting = true
				a.prompt = nil
				continue
			}
			a.report(a.editor.DispatchNamed(result.Command))
		case keymap.ResolvedLiteral:
			a.report(a.editor.Dispatch(editor.InsertChar(result.Rune)))
		}
	}
}

func (a *app) handlePrompt(kev key.Event) {
	switch {
	case kev.Key == key.KeyEnter:
		a.prompting = false
		a.report(a.editor.Dispatch(editor.Find(string(a.prompt))))
	case kev.Key == key.KeyEscape:
		a.prompting = false
	case kev.Key == key.KeyBackspace && len(a.prompt) > 0:
		a.prompt = a.prompt[:len(a.prompt)-1]
	case kev.IsChar():
		a.prompt = append(a.prompt, kev.Rune)
	}
}

func (a *app) save() {
	if err := os.WriteFile(a.path, []byte(a.editor.Text()), 0o644); err != nil {
		a.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.status = fmt.Sprintf("saved %s", a.path)
}

func (a *app) report(err error) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	if height < 2 {
		a.screen.Show()
		return
	}

	style := tcell.StyleDefault
	selStyle := style.Reverse(true)
	sel, hasSel := a.editor.Selection()
	snap := a.editor.Snapshot()

	// Scroll so the cursor line is visible.
	cursorPos := a.editor.CursorPosition()
	top := 0
	if cursorPos.Line >= height-1 {
		top = cursorPos.Line - (height - 2)
	}

	offset := 0
	for line := 0; line < snap.LineCount(); line++ {
		text := snap.LineText(line)
		if line >= top && line-top < height-1 {
			col := 0
			for _, r := range text {
				st := style
				if hasSel && offset+col >= sel.Start() && offset+col < sel.End() {
					st = selStyle
				}
				if col < width {
					a.screen.SetContent(col, line-top, r, nil, st)
				}
				col++
			}
		}
		offset += snap.LineLen(line) + 1
	}

	a.drawStatus(width, height)
	a.screen.ShowCursor(cursorPos.Column, cursorPos.Line-top)
	a.screen.Show()
}

func (a *app) drawStatus(width, height int) {
	status := a.status
	if a.prompting {
		status = "find: " + string(a.prompt)
	}
	if status == "" {
		pos := a.editor.CursorPosition()
		status = fmt.Sprintf("%d:%d  ctrl+q quit", pos.Line+1, pos.Column+1)
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		a.screen.SetContent(col, height-1, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		a.screen.SetContent(col, height-1, ' ', nil, style)
	}
}
