// Package input turns terminal key events into editor intents.
//
// Commands are short key sequences: a prefix letter, a target letter and
// sometimes an index or figure key ("s i F2", "n f c"). Moves and rotations
// are sticky: after "m i" every arrow key moves again until some other key
// arrives, which leaves the sticky mode and is then parsed normally.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Not safe for concurrent use; the editor feeds it from its event loop
type Machine struct {
	mode     InputMode
	state    InputState
	keyTable *KeyTable

	prefix rune
	target IntentType

	prompt     PromptKind
	promptText []rune

	// Command buffer for the status line
	cmdBuffer []rune
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{
		mode:      ModeNormal,
		state:     StateIdle,
		keyTable:  DefaultKeyTable(),
		cmdBuffer: make([]rune, 0, 8),
	}
}

func (m *Machine) Mode() InputMode { return m.mode }
func (m *Machine) State() InputState { return m.state }

// Pending returns the keys of an incomplete or sticky sequence for display
func (m *Machine) Pending() string {
	return string(m.cmdBuffer)
}

// Prompt returns the prompt label and the text typed so far; ok is false outside a prompt
func (m *Machine) Prompt() (label, text string, ok bool) {
	if m.mode != ModePrompt {
		return "", "", false
	}
	return promptLabels[m.prompt], string(m.promptText), true
}

// Reset drops any pending sequence and returns to Normal mode
func (m *Machine) Reset() {
	m.mode = ModeNormal
	m.state = StateIdle
	m.prefix = 0
	m.target = IntentNone
	m.prompt = PromptNone
	m.promptText = m.promptText[:0]
	m.cmdBuffer = m.cmdBuffer[:0]
}

// Process parses a terminal event; nil means the input is incomplete or ignored
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.ProcessKey(ev)
	}
	return nil
}

// ProcessKey parses one key press
func (m *Machine) ProcessKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		m.Reset()
		return &Intent{Type: IntentQuit}
	}

	switch m.mode {
	case ModePrompt:
		return m.processPrompt(ev)
	case ModeOverlay:
		m.Reset()
		return &Intent{Type: IntentOverlayClose}
	}
	return m.processNormal(ev)
}

// === Normal Mode Processing ===

func (m *Machine) processNormal(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyEscape && m.state != StateIdle {
		m.Reset()
		return nil
	}

	switch m.state {
	case StatePrefix:
		return m.processPrefix(ev)
	case StateIndexWait:
		return m.processIndex(ev)
	case StateNewFigure:
		return m.processNewFigure(ev)
	case StateStickyMove:
		return m.processStickyMove(ev)
	case StateStickyRotate:
		return m.processStickyRotate(ev)
	}
	return m.processIdle(ev)
}

func (m *Machine) processIdle(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		entry, ok := m.keyTable.SpecialKeys[ev.Key()]
		if !ok {
			return nil
		}
		return m.handleEntry(entry, keyName(ev))
	}

	entry, ok := m.keyTable.NormalRunes[ev.Rune()]
	if !ok {
		m.Reset()
		return nil
	}
	if entry.Behavior == BehaviorPrefix {
		m.prefix = ev.Rune()
	}
	return m.handleEntry(entry, keyName(ev))
}

func (m *Machine) processPrefix(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.PrefixRunes[m.prefix][ev.Rune()]
	} else {
		entry, ok = m.keyTable.PrefixKeys[m.prefix][ev.Key()]
	}
	if !ok {
		m.Reset()
		return nil
	}
	return m.handleEntry(entry, keyName(ev))
}

// handleEntry advances the sequence by one key
func (m *Machine) handleEntry(entry KeyEntry, key string) *Intent {
	m.push(key)

	switch entry.Behavior {
	case BehaviorAction:
		return m.emit(&Intent{Type: entry.IntentType})

	case BehaviorPrefix:
		m.state = StatePrefix
		return nil

	case BehaviorIndex:
		m.target = entry.IntentType
		m.state = StateIndexWait
		return nil

	case BehaviorKind:
		m.target = entry.IntentType
		m.state = StateNewFigure
		return nil

	case BehaviorSticky:
		m.target = entry.IntentType
		if entry.IntentType == IntentRotateFigure {
			m.state = StateStickyRotate
		} else {
			m.state = StateStickyMove
		}
		return nil

	case BehaviorPrompt:
		cmd := m.captureCommand()
		m.Reset()
		m.mode = ModePrompt
		m.prompt = entry.Prompt
		return &Intent{Type: entry.IntentType, Command: cmd}
	}

	m.Reset()
	return nil
}

func (m *Machine) processIndex(ev *tcell.EventKey) *Intent {
	var (
		idx int
		ok  bool
	)
	if ev.Key() == tcell.KeyRune {
		idx, ok = m.keyTable.IndexRunes[ev.Rune()]
	} else {
		idx, ok = m.keyTable.IndexKeys[ev.Key()]
	}
	if !ok {
		m.Reset()
		return nil
	}
	m.push(keyName(ev))
	return m.emit(&Intent{Type: m.target, Index: idx})
}

func (m *Machine) processNewFigure(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		m.Reset()
		return nil
	}
	kind, ok := m.keyTable.FigureKinds[ev.Rune()]
	if !ok {
		m.Reset()
		return nil
	}
	m.push(keyName(ev))
	return m.emit(&Intent{Type: m.target, Kind: kind})
}

// === Sticky Modes ===

// processStickyMove repeats the move for every arrow; any other key leaves the mode and is reparsed
func (m *Machine) processStickyMove(ev *tcell.EventKey) *Intent {
	dir, ok := m.keyTable.Arrows[ev.Key()]
	if !ok {
		m.Reset()
		return m.processIdle(ev)
	}
	return &Intent{Type: m.target, DX: dir[0], DY: dir[1], Command: m.Pending()}
}

func (m *Machine) processStickyRotate(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if turn, ok := m.keyTable.TurnRunes[ev.Rune()]; ok {
			return &Intent{Type: m.target, Turn: turn, Command: m.Pending()}
		}
	}
	m.Reset()
	return m.processIdle(ev)
}

// === Prompt Mode Processing ===

func (m *Machine) processPrompt(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.Reset()
		return &Intent{Type: IntentTextCancel}

	case tcell.KeyEnter:
		text := string(m.promptText)
		kind := m.prompt
		m.Reset()
		if kind == PromptLoad {
			return &Intent{Type: IntentLoad, Text: text}
		}
		return &Intent{Type: IntentSave, Text: text}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(m.promptText) > 0 {
			m.promptText = m.promptText[:len(m.promptText)-1]
		}
		return &Intent{Type: IntentTextBackspace}

	case tcell.KeyRune:
		m.promptText = append(m.promptText, ev.Rune())
		return &Intent{Type: IntentTextChar, Char: ev.Rune()}
	}
	return nil
}

// === Helpers ===

// emit finishes a sequence; the info view switches the machine into overlay mode
func (m *Machine) emit(intent *Intent) *Intent {
	intent.Command = m.captureCommand()
	m.Reset()
	if intent.Type == IntentInfo {
		m.mode = ModeOverlay
	}
	return intent
}

func (m *Machine) push(key string) {
	if len(m.cmdBuffer) > 0 {
		m.cmdBuffer = append(m.cmdBuffer, ' ')
	}
	m.cmdBuffer = append(m.cmdBuffer, []rune(key)...)
}

func (m *Machine) captureCommand() string {
	return string(m.cmdBuffer)
}

// keyName is the display form of a key: the rune itself or tcell's name for special keys
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return name
	}
	return ev.Name()
}
