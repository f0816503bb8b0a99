package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-canvas/shape"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// feed processes events in order and returns the non-nil intents
func feed(m *Machine, events ...*tcell.EventKey) []*Intent {
	var out []*Intent
	for _, ev := range events {
		if in := m.ProcessKey(ev); in != nil {
			out = append(out, in)
		}
	}
	return out
}

func expectOne(t *testing.T, intents []*Intent, want IntentType) *Intent {
	t.Helper()
	if len(intents) != 1 {
		t.Fatalf("Expected exactly one intent, got %d", len(intents))
	}
	if intents[0].Type != want {
		t.Fatalf("Expected %s, got %s", want, intents[0].Type)
	}
	return intents[0]
}

func TestSingleKeyCommands(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{runeKey('u'), IntentFigureScaleUp},
		{runeKey('d'), IntentFigureScaleDown},
		{specialKey(tcell.KeyF12), IntentContainerScaleUp},
		{specialKey(tcell.KeyF10), IntentContainerScaleDown},
		{specialKey(tcell.KeyEscape), IntentEscape},
	}
	for _, tt := range tests {
		m := NewMachine()
		expectOne(t, feed(m, tt.ev), tt.want)
		if m.State() != StateIdle || m.Pending() != "" {
			t.Errorf("%s: machine not reset", tt.want)
		}
	}
}

func TestQuitAlwaysWins(t *testing.T) {
	m := NewMachine()
	feed(m, runeKey('j'), runeKey('a'))
	in := m.ProcessKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if in == nil || in.Type != IntentQuit {
		t.Fatalf("Expected quit from the prompt, got %v", in)
	}
	if m.Mode() != ModeNormal {
		t.Error("Quit must reset the machine")
	}
}

func TestPrefixedCommands(t *testing.T) {
	tests := []struct {
		keys []*tcell.EventKey
		want IntentType
		cmd  string
	}{
		{[]*tcell.EventKey{runeKey('b'), runeKey('f')}, IntentRemoveFigure, "b f"},
		{[]*tcell.EventKey{runeKey('b'), runeKey('i')}, IntentDisposeContainer, "b i"},
		{[]*tcell.EventKey{runeKey('n'), runeKey('i')}, IntentNewContainer, "n i"},
		{[]*tcell.EventKey{runeKey('l'), specialKey(tcell.KeyUp)}, IntentLayerUp, "l Up"},
		{[]*tcell.EventKey{runeKey('l'), specialKey(tcell.KeyDown)}, IntentLayerDown, "l Down"},
	}
	for _, tt := range tests {
		m := NewMachine()
		in := expectOne(t, feed(m, tt.keys...), tt.want)
		if in.Command != tt.cmd {
			t.Errorf("%s: expected command %q, got %q", tt.want, tt.cmd, in.Command)
		}
	}
}

func TestPendingSequence(t *testing.T) {
	m := NewMachine()
	if in := m.ProcessKey(runeKey('s')); in != nil {
		t.Fatalf("Prefix must not emit, got %s", in.Type)
	}
	if m.State() != StatePrefix || m.Pending() != "s" {
		t.Errorf("Unexpected state %d pending %q", m.State(), m.Pending())
	}
	m.ProcessKey(runeKey('i'))
	if m.State() != StateIndexWait || m.Pending() != "s i" {
		t.Errorf("Unexpected state %d pending %q", m.State(), m.Pending())
	}
}

func TestIndexSelection(t *testing.T) {
	m := NewMachine()
	in := expectOne(t, feed(m, runeKey('s'), runeKey('i'), specialKey(tcell.KeyF2)), IntentSelectContainer)
	if in.Index != 1 || in.Command != "s i F2" {
		t.Errorf("Unexpected index %d command %q", in.Index, in.Command)
	}

	in = expectOne(t, feed(m, runeKey('s'), runeKey('f'), runeKey('3')), IntentSelectFigure)
	if in.Index != 2 {
		t.Errorf("Expected index 2, got %d", in.Index)
	}

	in = expectOne(t, feed(m, runeKey('c'), specialKey(tcell.KeyF4)), IntentMerge)
	if in.Index != 3 {
		t.Errorf("Expected index 3, got %d", in.Index)
	}
}

func TestInvalidSequenceResets(t *testing.T) {
	m := NewMachine()
	if got := feed(m, runeKey('s'), runeKey('z'), runeKey('u')); len(got) != 1 || got[0].Type != IntentFigureScaleUp {
		t.Fatalf("Expected reset then grow, got %v", got)
	}

	if got := feed(m, runeKey('c'), runeKey('x')); len(got) != 0 {
		t.Errorf("Bad index must not emit, got %v", got)
	}
	if m.State() != StateIdle {
		t.Error("Bad index must reset")
	}

	feed(m, runeKey('n'), runeKey('f'))
	if got := feed(m, specialKey(tcell.KeyEscape)); len(got) != 0 {
		t.Error("Esc inside a sequence only cancels it")
	}
	if m.State() != StateIdle || m.Pending() != "" {
		t.Error("Esc must reset the sequence")
	}
}

func TestNewFigureKinds(t *testing.T) {
	kinds := map[rune]shape.Kind{
		'c': shape.KindCircle,
		'f': shape.KindFilledCircle,
		'e': shape.KindEllipse,
		'l': shape.KindLine,
		'o': shape.KindConus,
		'p': shape.KindPartialConus,
	}
	for r, want := range kinds {
		m := NewMachine()
		in := expectOne(t, feed(m, runeKey('n'), runeKey('f'), runeKey(r)), IntentNewFigure)
		if in.Kind != want {
			t.Errorf("n f %c: expected %s, got %s", r, want, in.Kind)
		}
	}
}

func TestStickyMove(t *testing.T) {
	m := NewMachine()
	got := feed(m,
		runeKey('m'), runeKey('i'),
		specialKey(tcell.KeyRight),
		specialKey(tcell.KeyRight),
		specialKey(tcell.KeyUp),
	)
	if len(got) != 3 {
		t.Fatalf("Expected 3 moves, got %d", len(got))
	}
	for _, in := range got {
		if in.Type != IntentMoveContainer || in.Command != "m i" {
			t.Errorf("Unexpected intent %s %q", in.Type, in.Command)
		}
	}
	if got[0].DX != 1 || got[0].DY != 0 || got[2].DX != 0 || got[2].DY != -1 {
		t.Errorf("Unexpected directions %+v %+v", got[0], got[2])
	}
	if m.State() != StateStickyMove || m.Pending() != "m i" {
		t.Error("Machine must stay in the sticky mode")
	}

	// a non-arrow key leaves the mode and is handled as a fresh command
	in := expectOne(t, feed(m, runeKey('u')), IntentFigureScaleUp)
	_ = in
	if m.State() != StateIdle {
		t.Error("Non-arrow key must leave the sticky mode")
	}
}

func TestStickyMoveFigure(t *testing.T) {
	m := NewMachine()
	got := feed(m, runeKey('m'), runeKey('f'), specialKey(tcell.KeyLeft), specialKey(tcell.KeyDown))
	if len(got) != 2 || got[0].Type != IntentMoveFigure || got[0].DX != -1 || got[1].DY != 1 {
		t.Errorf("Unexpected intents %+v", got)
	}
}

func TestStickyRotate(t *testing.T) {
	m := NewMachine()
	got := feed(m, runeKey('r'), runeKey('f'), runeKey('q'), runeKey('e'), runeKey('e'))
	if len(got) != 3 {
		t.Fatalf("Expected 3 rotations, got %d", len(got))
	}
	if got[0].Turn != -1 || got[1].Turn != 1 || got[2].Type != IntentRotateFigure {
		t.Errorf("Unexpected rotations %+v", got)
	}

	got = feed(m, runeKey('s'), runeKey('f'), runeKey('1'))
	expectOne(t, got, IntentSelectFigure)
}

func TestStickyEscape(t *testing.T) {
	m := NewMachine()
	feed(m, runeKey('r'), runeKey('f'))
	if got := feed(m, specialKey(tcell.KeyEscape)); len(got) != 0 {
		t.Error("Esc leaves the sticky mode without emitting")
	}
	if m.State() != StateIdle {
		t.Error("Esc must leave the sticky mode")
	}
}

func TestPrompt(t *testing.T) {
	m := NewMachine()
	expectOne(t, feed(m, runeKey('j')), IntentSavePrompt)

	label, text, ok := m.Prompt()
	if !ok || label == "" || text != "" {
		t.Fatalf("Expected empty save prompt, got %q %q %v", label, text, ok)
	}

	feed(m, runeKey('b'), runeKey('o'), runeKey('x'), specialKey(tcell.KeyBackspace2), runeKey('a'))
	if _, text, _ := m.Prompt(); text != "boa" {
		t.Errorf("Expected typed text boa, got %q", text)
	}

	in := m.ProcessKey(specialKey(tcell.KeyEnter))
	if in == nil || in.Type != IntentSave || in.Text != "boa" {
		t.Fatalf("Expected save of boa, got %+v", in)
	}
	if _, _, ok := m.Prompt(); ok || m.Mode() != ModeNormal {
		t.Error("Prompt must close on confirm")
	}
}

func TestLoadPromptCancel(t *testing.T) {
	m := NewMachine()
	feed(m, runeKey('p'), runeKey('x'))
	label, _, _ := m.Prompt()
	if label != promptLabels[PromptLoad] {
		t.Errorf("Unexpected label %q", label)
	}

	in := m.ProcessKey(specialKey(tcell.KeyEscape))
	if in == nil || in.Type != IntentTextCancel {
		t.Fatalf("Expected cancel, got %+v", in)
	}

	feed(m, runeKey('p'), runeKey('y'))
	in = m.ProcessKey(specialKey(tcell.KeyEnter))
	if in.Type != IntentLoad || in.Text != "y" {
		t.Errorf("Expected load of y, got %+v", in)
	}
}

func TestInfoOverlay(t *testing.T) {
	m := NewMachine()
	expectOne(t, feed(m, runeKey('v')), IntentInfo)
	if m.Mode() != ModeOverlay {
		t.Fatal("Info must open the overlay")
	}
	expectOne(t, feed(m, runeKey('u')), IntentOverlayClose)
	if m.Mode() != ModeNormal {
		t.Error("Any key must close the overlay")
	}
}

func TestResizeEvent(t *testing.T) {
	m := NewMachine()
	in := m.Process(tcell.NewEventResize(80, 24))
	if in == nil || in.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", in)
	}
}
