package widget

import (
	"errors"

	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// BlinkTicks is how many ticks the cursor stays in each blink phase.
const BlinkTicks = 6

const (
	cursorGlyph      = "█"
	placeholderGlyph = "_"
)

var errInvalid = errors.New("invalid input")

// Validation decides whether an input's text is acceptable.
type Validation struct {
	fixed bool
	fn    func(string) bool
}

// Always returns a validation with a fixed result.
func Always(valid bool) Validation {
	return Validation{fixed: valid}
}

// Func validates with fn.
func Func(fn func(string) bool) Validation {
	return Validation{fn: fn}
}

func (v Validation) Valid(text string) bool {
	if v.fn != nil {
		return v.fn(text)
	}
	return v.fixed
}

// Input is a single-line text field. Editing is delegated to a textinput
// model; the field draws itself into the frame and blinks on App ticks.
type Input struct {
	model  textinput.Model
	scroll int
	ticks  int
}

func NewInput() *Input {
	m := textinput.New()
	m.Prompt = ""
	m.Cursor.SetMode(cursor.CursorStatic)
	in := &Input{model: m}
	in.SetValidation(Always(true))
	return in
}

// SetValue replaces the text and moves the cursor to the end.
func (in *Input) SetValue(s string) {
	in.model.SetValue(s)
	in.model.CursorEnd()
}

func (in *Input) Value() string { return in.model.Value() }

// Cursor is the insertion point, between 0 and the rune count of the value.
func (in *Input) Cursor() int { return in.model.Position() }

// Scroll is the index of the first visible rune.
func (in *Input) Scroll() int { return in.scroll }

// SetMask hides the text behind r. Zero shows the text.
func (in *Input) SetMask(r rune) {
	if r == 0 {
		in.model.EchoMode = textinput.EchoNormal
		return
	}
	in.model.EchoMode = textinput.EchoPassword
	in.model.EchoCharacter = r
}

// SetMaxLen limits the number of runes. Zero means unlimited.
func (in *Input) SetMaxLen(n int) { in.model.CharLimit = max(n, 0) }

func (in *Input) SetValidation(v Validation) {
	in.model.Validate = func(s string) error {
		if v.Valid(s) {
			return nil
		}
		return errInvalid
	}
	in.model.Err = in.model.Validate(in.model.Value())
}

func (in *Input) Valid() bool { return in.model.Validate(in.model.Value()) == nil }

func (in *Input) Focused() bool { return in.model.Focused() }

func (in *Input) SetFocused(focused bool) {
	in.ticks = 0
	if !focused {
		in.model.Blur()
		return
	}
	in.model.Focus()
	in.model.Cursor.SetMode(cursor.CursorStatic)
}

// CursorVisible reports whether the blinking cursor is in its visible phase.
func (in *Input) CursorVisible() bool {
	return in.model.Focused() && !in.model.Cursor.Blink
}

func (in *Input) Tick(*ui.Context) {
	if !in.model.Focused() {
		in.ticks = 0
		return
	}
	in.ticks = (in.ticks + 1) % (BlinkTicks * 2)
	if in.ticks < BlinkTicks {
		in.model.Cursor.SetMode(cursor.CursorStatic)
	} else {
		in.model.Cursor.SetMode(cursor.CursorHide)
	}
}

func (in *Input) HandleKey(_ *ui.Context, msg tea.KeyMsg) {
	if !in.model.Focused() {
		return
	}
	if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
		msg.Runes = []rune{' '}
	}
	before, pos := in.model.Value(), in.model.Position()
	in.model, _ = in.model.Update(msg)
	if in.model.Value() != before || in.model.Position() != pos {
		// Edits and movement show the cursor immediately.
		in.ticks = 0
		in.model.Cursor.SetMode(cursor.CursorStatic)
	}
}

// display returns the text as drawn, with masking applied.
func (in *Input) display() []rune {
	value := []rune(in.model.Value())
	if in.model.EchoMode != textinput.EchoPassword {
		return value
	}
	masked := make([]rune, len(value))
	for i := range masked {
		masked[i] = in.model.EchoCharacter
	}
	return masked
}

// adjustScroll keeps the cursor cell inside a window of width cells.
func (in *Input) adjustScroll(text []rune, width int) {
	pos := in.model.Position()
	if width <= 0 {
		in.scroll = 0
		return
	}
	in.scroll = max(min(in.scroll, len(text)), 0)
	if pos < in.scroll {
		in.scroll = pos
	}
	for in.scroll < pos && runewidth.StringWidth(string(text[in.scroll:pos])) >= width {
		in.scroll++
	}
}

func (in *Input) Render(f *render.Frame, area geometry.Rect, styles *theme.Styles) {
	if area.Empty() {
		return
	}
	text := in.display()
	in.adjustScroll(text, area.Width)

	style := styles.InputValid
	if !in.Valid() {
		style = styles.InputInvalid
	}
	used := f.SetStringClipped(area.X, area.Y, string(text[in.scroll:]), style, area)
	for x := area.X + used; x < area.Right(); x++ {
		f.SetStringClipped(x, area.Y, placeholderGlyph, style, area)
	}

	if in.CursorVisible() {
		col := runewidth.StringWidth(string(text[in.scroll:in.model.Position()]))
		if col < area.Width {
			f.SetStringClipped(area.X+col, area.Y, cursorGlyph, styles.Cursor, area)
		}
	}
}
