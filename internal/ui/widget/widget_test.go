package widget

import (
	"math/rand"
	"testing"

	"github.com/atomicstack/matui/internal/bus"
	"github.com/atomicstack/matui/internal/geometry"
	"github.com/atomicstack/matui/internal/render"
	"github.com/atomicstack/matui/internal/theme"
	"github.com/atomicstack/matui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newCtx() (*ui.Context, *bus.Mailbox[ui.Notification]) {
	notes := bus.New[ui.Notification]()
	return ui.NewContext(notes, ui.ContextOptions{}), notes
}

func TestInputCursorStaysInRange(t *testing.T) {
	ctx, _ := newCtx()
	keys := []tea.KeyMsg{
		runes("a"), runes("xyz"), keyOf(tea.KeySpace),
		keyOf(tea.KeyLeft), keyOf(tea.KeyRight), keyOf(tea.KeyHome), keyOf(tea.KeyEnd),
		keyOf(tea.KeyCtrlA), keyOf(tea.KeyCtrlE), keyOf(tea.KeyBackspace), keyOf(tea.KeyDelete),
	}
	rng := rand.New(rand.NewSource(7))
	for _, maxLen := range []int{0, 5} {
		in := NewInput()
		in.SetMaxLen(maxLen)
		in.SetFocused(true)
		for i := 0; i < 2000; i++ {
			in.HandleKey(ctx, keys[rng.Intn(len(keys))])
			n := len([]rune(in.Value()))
			require.GreaterOrEqual(t, in.Cursor(), 0)
			require.LessOrEqual(t, in.Cursor(), n)
			if maxLen > 0 {
				require.LessOrEqual(t, n, maxLen)
			}
		}
	}
}

func TestInputEditing(t *testing.T) {
	ctx, _ := newCtx()
	in := NewInput()
	in.SetFocused(true)
	in.HandleKey(ctx, runes("helo"))
	in.HandleKey(ctx, keyOf(tea.KeyLeft))
	in.HandleKey(ctx, runes("l"))
	require.Equal(t, "hello", in.Value())
	require.Equal(t, 4, in.Cursor())

	in.HandleKey(ctx, keyOf(tea.KeyHome))
	in.HandleKey(ctx, keyOf(tea.KeyDelete))
	require.Equal(t, "ello", in.Value())
	in.HandleKey(ctx, keyOf(tea.KeyBackspace))
	require.Equal(t, "ello", in.Value(), "backspace at start is a no-op")

	in.HandleKey(ctx, keyOf(tea.KeyEnd))
	in.HandleKey(ctx, keyOf(tea.KeyBackspace))
	require.Equal(t, "ell", in.Value())
}

func TestInputIgnoresKeysWhenUnfocused(t *testing.T) {
	ctx, _ := newCtx()
	in := NewInput()
	in.HandleKey(ctx, runes("a"))
	require.Equal(t, "", in.Value())
}

func TestInputCursorBlinks(t *testing.T) {
	ctx, _ := newCtx()
	in := NewInput()
	require.False(t, in.CursorVisible(), "unfocused cursor is hidden")

	in.SetFocused(true)
	require.True(t, in.CursorVisible())
	for i := 0; i < BlinkTicks; i++ {
		in.Tick(ctx)
	}
	require.False(t, in.CursorVisible(), "cursor hides after %d ticks", BlinkTicks)
	for i := 0; i < BlinkTicks; i++ {
		in.Tick(ctx)
	}
	require.True(t, in.CursorVisible(), "cursor returns after a full cycle")

	for i := 0; i < BlinkTicks; i++ {
		in.Tick(ctx)
	}
	in.HandleKey(ctx, runes("a"))
	require.True(t, in.CursorVisible(), "edits reset the blink phase")

	in.SetFocused(false)
	in.Tick(ctx)
	require.False(t, in.CursorVisible())
}

func TestInputRenderMasksAndPads(t *testing.T) {
	in := NewInput()
	in.SetMask('*')
	in.SetValue("pw")
	f := render.NewFrame(6, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, "**____", f.String())

	in.SetFocused(true)
	f = render.NewFrame(6, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, "**█___", f.String())
}

func TestInputRenderScrollsToCursor(t *testing.T) {
	in := NewInput()
	in.SetValue("abcdefghij")
	in.SetFocused(true)
	f := render.NewFrame(4, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, 7, in.Scroll())
	require.Equal(t, "hij█", f.String())

	ctx, _ := newCtx()
	in.HandleKey(ctx, keyOf(tea.KeyHome))
	f = render.NewFrame(4, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, 0, in.Scroll())
	require.Equal(t, "█bcd", f.String())
}

func TestInputRenderMeasuresWideRunes(t *testing.T) {
	in := NewInput()
	in.SetValue("日本")
	in.SetFocused(true)
	f := render.NewFrame(6, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, "日本█_", f.String())

	in.SetValue("日本語")
	f = render.NewFrame(3, 1)
	in.Render(f, f.Area(), theme.Default())
	require.Equal(t, 2, in.Scroll())
	require.Equal(t, "語█", f.String())
}

func TestInputSpaceAndWordEditing(t *testing.T) {
	ctx, _ := newCtx()
	in := NewInput()
	in.SetFocused(true)
	in.HandleKey(ctx, runes("hello"))
	in.HandleKey(ctx, keyOf(tea.KeySpace))
	in.HandleKey(ctx, runes("world"))
	require.Equal(t, "hello world", in.Value())

	in.HandleKey(ctx, keyOf(tea.KeyCtrlW))
	require.Equal(t, "hello ", in.Value())
	in.HandleKey(ctx, keyOf(tea.KeyCtrlU))
	require.Equal(t, "", in.Value())
	require.Equal(t, 0, in.Cursor())
}

func TestInputMaxLenTruncatesValue(t *testing.T) {
	in := NewInput()
	in.SetMaxLen(3)
	in.SetValue("abcdef")
	require.Equal(t, "abc", in.Value())
	require.Equal(t, 3, in.Cursor())
}

func TestWidgetsDrawWithGivenStyles(t *testing.T) {
	custom := *theme.Default()
	selected := lipgloss.NewStyle().Underline(true)
	invalid := lipgloss.NewStyle().Blink(true)
	custom.ButtonSelected = &selected
	custom.InputInvalid = &invalid

	b := NewButton("OK", nil)
	b.Align = render.AlignLeft
	b.SetFocused(true)
	f := render.NewFrame(4, 1)
	b.Render(f, f.Area(), &custom)
	require.Same(t, &selected, f.Cell(0, 0).Style)

	in := NewInput()
	in.SetValidation(Always(false))
	f = render.NewFrame(4, 1)
	in.Render(f, f.Area(), &custom)
	require.Same(t, &invalid, f.Cell(0, 0).Style)
}

func TestValidation(t *testing.T) {
	require.True(t, Always(true).Valid("anything"))
	require.False(t, Always(false).Valid("anything"))
	nonEmpty := Func(func(s string) bool { return s != "" })
	require.False(t, nonEmpty.Valid(""))
	require.True(t, nonEmpty.Valid("x"))

	in := NewInput()
	in.SetValidation(nonEmpty)
	require.False(t, in.Valid())
}

func TestButtonFiresOnlyWhenFocusedAndEnabled(t *testing.T) {
	ctx, notes := newCtx()
	b := NewButton("Login", ui.HidePopup{})

	b.HandleKey(ctx, keyOf(tea.KeyEnter))
	require.Equal(t, 0, notes.Len(), "unfocused button must not fire")

	b.SetFocused(true)
	b.HandleKey(ctx, runes("x"))
	require.Equal(t, 0, notes.Len(), "only enter fires")

	b.SetEnabled(false)
	b.HandleKey(ctx, keyOf(tea.KeyEnter))
	require.Equal(t, 0, notes.Len(), "disabled button must not fire")

	b.SetEnabled(true)
	b.HandleKey(ctx, keyOf(tea.KeyEnter))
	n, ok := notes.TryRecv()
	require.True(t, ok)
	require.IsType(t, ui.HidePopup{}, n)
}

func TestButtonRenderAlignment(t *testing.T) {
	b := NewButton("OK", nil)
	f := render.NewFrame(9, 1)
	b.Render(f, f.Area(), theme.Default())
	require.Equal(t, "   [OK]", f.String())

	b.Align = render.AlignLeft
	b.InnerPadding = 1
	f = render.NewFrame(9, 1)
	b.Render(f, f.Area(), theme.Default())
	require.Equal(t, "[ OK ]", f.String())

	b.Align = render.AlignRight
	f = render.NewFrame(9, 1)
	b.Render(f, f.Area(), theme.Default())
	require.Equal(t, "   [ OK ]", f.String())
}

func TestLabeledInputRendersLabelAndField(t *testing.T) {
	l := NewLabeledInput("User")
	l.Input.SetValue("al")
	f := render.NewFrame(10, 1)
	l.Render(f, geometry.Rect{Width: 10, Height: 1}, theme.Default())
	require.Equal(t, "Useral____", f.String())
}
