package editor

import (
	"github.com/kestrel-edit/kestrel/internal/engine/buffer"
)

// Op identifies a dispatcher operation.
type Op uint8

const (
	OpNone Op = iota

	// Text mutation
	OpInsertChar
	OpInsertText
	OpDeleteBackward
	OpDeleteForward
	OpDeleteLine
	OpDeleteSelection
	OpDeleteWordBackward
	OpDeleteWordForward
	OpDeleteToLineStart
	OpDeleteToLineEnd

	// Navigation
	OpMoveLeft
	OpMoveRight
	OpMoveUp
	OpMoveDown
	OpMoveWordLeft
	OpMoveWordRight
	OpMoveLineStart
	OpMoveLineEnd
	OpMoveDocumentStart
	OpMoveDocumentEnd
	OpPageUp
	OpPageDown
	OpMoveTo

	// Selection
	OpSelectionStart
	OpSelectionEnd
	OpSelectionClear
	OpSelectAll
	OpSelectLine
	OpSelectWord

	// History
	OpUndo
	OpRedo

	// Clipboard
	OpCut
	OpCopy
	OpPaste

	// Search
	OpFind
	OpFindNext
	OpFindPrevious
	OpReplace
	OpReplaceAll

	// Lifecycle
	OpSetText
	OpClear
)

// Command is one dispatcher input. Payload fields are used by the
// operations that need them and ignored otherwise.
type Command struct {
	Op Op

	// Rune carries the character for OpInsertChar.
	Rune rune

	// Text carries inserted text, the search pattern, or the new
	// document content, depending on the operation.
	Text string

	// Replacement carries the replacement text for OpReplace and
	// OpReplaceAll.
	Replacement string

	// Pos is the target for OpMoveTo.
	Pos buffer.Position

	// Extend turns a navigation command into a selection extension.
	Extend bool
}

// Convenience constructors for commands with payloads.

func InsertChar(r rune) Command         { return Command{Op: OpInsertChar, Rune: r} }
func InsertText(text string) Command    { return Command{Op: OpInsertText, Text: text} }
func MoveTo(pos buffer.Position) Command { return Command{Op: OpMoveTo, Pos: pos} }
func Find(pattern string) Command       { return Command{Op: OpFind, Text: pattern} }

func Replace(pattern, replacement string) Command {
	return Command{Op: OpReplace, Text: pattern, Replacement: replacement}
}

func ReplaceAll(pattern, replacement string) Command {
	return Command{Op: OpReplaceAll, Text: pattern, Replacement: replacement}
}

func SetText(text string) Command { return Command{Op: OpSetText, Text: text} }

// commandNames maps keymap command names to parameterless commands.
// Names needing a payload (find, replace) are the host's concern.
var commandNames = map[string]Command{
	"insert-newline":       {Op: OpInsertText, Text: "\n"},
	"insert-tab":           {Op: OpInsertText, Text: "\t"},
	"delete-backward":      {Op: OpDeleteBackward},
	"delete-forward":       {Op: OpDeleteForward},
	"delete-line":          {Op: OpDeleteLine},
	"delete-selection":     {Op: OpDeleteSelection},
	"delete-word-backward": {Op: OpDeleteWordBackward},
	"delete-word-forward":  {Op: OpDeleteWordForward},
	"delete-to-line-start": {Op: OpDeleteToLineStart},
	"delete-to-line-end":   {Op: OpDeleteToLineEnd},

	"move-left":           {Op: OpMoveLeft},
	"move-right":          {Op: OpMoveRight},
	"move-up":             {Op: OpMoveUp},
	"move-down":           {Op: OpMoveDown},
	"move-word-left":      {Op: OpMoveWordLeft},
	"move-word-right":     {Op: OpMoveWordRight},
	"move-line-start":     {Op: OpMoveLineStart},
	"move-line-end":       {Op: OpMoveLineEnd},
	"move-document-start": {Op: OpMoveDocumentStart},
	"move-document-end":   {Op: OpMoveDocumentEnd},
	"page-up":             {Op: OpPageUp},
	"page-down":           {Op: OpPageDown},

	"select-left":        {Op: OpMoveLeft, Extend: true},
	"select-right":       {Op: OpMoveRight, Extend: true},
	"select-up":          {Op: OpMoveUp, Extend: true},
	"select-down":        {Op: OpMoveDown, Extend: true},
	"select-word-left":   {Op: OpMoveWordLeft, Extend: true},
	"select-word-right":  {Op: OpMoveWordRight, Extend: true},
	"select-line-start":  {Op: OpMoveLineStart, Extend: true},
	"select-line-end":    {Op: OpMoveLineEnd, Extend: true},
	"selection-start":    {Op: OpSelectionStart},
	"selection-end":      {Op: OpSelectionEnd},
	"selection-clear":    {Op: OpSelectionClear},
	"select-all":         {Op: OpSelectAll},
	"select-line":        {Op: OpSelectLine},
	"select-word":        {Op: OpSelectWord},

	"undo": {Op: OpUndo},
	"redo": {Op: OpRedo},

	"cut":   {Op: OpCut},
	"copy":  {Op: OpCopy},
	"paste": {Op: OpPaste},

	"find-next":     {Op: OpFindNext},
	"find-previous": {Op: OpFindPrevious},
}

// promptCommands are keymap command names that need a text payload
// before they can be dispatched. The stock bindings resolve primary+f
// to "find"; hosts prompt for the payload and build the command with
// Find, Replace, or ReplaceAll.
var promptCommands = map[string]bool{
	"find":        true,
	"replace":     true,
	"replace-all": true,
}

// NeedsText reports whether the named command requires a text payload
// and therefore cannot be dispatched by name alone.
func NeedsText(name string) bool {
	return promptCommands[name]
}

// CommandByName returns the command for a keymap command name.
// Returns false for unknown names and for names whose command
// requires a payload; NeedsText distinguishes the two.
func CommandByName(name string) (Command, bool) {
	cmd, ok := commandNames[name]
	return cmd, ok
}
