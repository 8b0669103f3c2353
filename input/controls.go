package input

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action is a host-level command produced by a key press
type Action uint8

const (
	ActionNone  Action = iota
	ActionReset        // r: start over after game over
	ActionQuit         // q, Esc, Ctrl+C
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// actionRegistry maps binding names to actions
var actionRegistry = map[string]Action{
	"none":  ActionNone,
	"reset": ActionReset,
	"quit":  ActionQuit,
}

// Controls maps key events to actions
type Controls struct {
	// Special keys (Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultControls returns the default bindings
func DefaultControls() *Controls {
	return &Controls{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'r': ActionReset,
			'q': ActionQuit,
		},
	}
}

// ActionByName resolves a binding name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// Bind assigns a named action to a rune; "none" removes the binding
func (c *Controls) Bind(r rune, name string) error {
	a, err := ActionByName(name)
	if err != nil {
		return err
	}
	r = unicode.ToLower(r)
	if a == ActionNone {
		delete(c.Runes, r)
		return nil
	}
	c.Runes[r] = a
	return nil
}

// BindAll applies a key-to-action table such as the [input.bindings] config
// section; each key must be a single character
func (c *Controls) BindAll(bindings map[string]string) error {
	for key, name := range bindings {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("binding key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		if err := c.Bind(r, name); err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
	}
	return nil
}

// Map resolves an event to an action; non-key events map to ActionNone
func (c *Controls) Map(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	if key.Key() == tcell.KeyRune {
		return c.Runes[unicode.ToLower(key.Rune())]
	}
	return c.SpecialKeys[key.Key()]
}
