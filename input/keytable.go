package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-canvas/shape"
)

// KeyBehavior classifies how a key advances the sequence
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorAction             // emit IntentType now
	BehaviorPrefix             // await a second key from the prefix table
	BehaviorIndex              // await an index key, then emit IntentType
	BehaviorKind               // await a figure key
	BehaviorSticky             // enter a repeating sub-mode for IntentType
	BehaviorPrompt             // open a text prompt
)

// KeyEntry describes what a key does in its context
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
	Prompt     PromptKind
}

// KeyTable maps keys to behaviors for every parser state
type KeyTable struct {
	// Special keys valid in the idle state
	SpecialKeys map[tcell.Key]KeyEntry

	// First key of a command
	NormalRunes map[rune]KeyEntry

	// Second key after a rune prefix
	PrefixRunes map[rune]map[rune]KeyEntry
	PrefixKeys  map[rune]map[tcell.Key]KeyEntry

	// Figure keys after n f
	FigureKinds map[rune]shape.Kind

	// Index keys: F1..F9 and 1..9 select 0..8
	IndexKeys  map[tcell.Key]int
	IndexRunes map[rune]int

	// Arrow directions in the sticky move mode
	Arrows map[tcell.Key][2]int

	// Rotation keys in the sticky rotate mode
	TurnRunes map[rune]int
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Behavior: BehaviorAction, IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {Behavior: BehaviorAction, IntentType: IntentQuit},
			tcell.KeyEscape: {Behavior: BehaviorAction, IntentType: IntentEscape},
			tcell.KeyF12:    {Behavior: BehaviorAction, IntentType: IntentContainerScaleUp},
			tcell.KeyF10:    {Behavior: BehaviorAction, IntentType: IntentContainerScaleDown},
		},

		NormalRunes: map[rune]KeyEntry{
			'v': {Behavior: BehaviorAction, IntentType: IntentInfo},
			'u': {Behavior: BehaviorAction, IntentType: IntentFigureScaleUp},
			'd': {Behavior: BehaviorAction, IntentType: IntentFigureScaleDown},
			'j': {Behavior: BehaviorPrompt, IntentType: IntentSavePrompt, Prompt: PromptSave},
			'p': {Behavior: BehaviorPrompt, IntentType: IntentLoadPrompt, Prompt: PromptLoad},
			'c': {Behavior: BehaviorIndex, IntentType: IntentMerge},
			'b': {Behavior: BehaviorPrefix},
			'l': {Behavior: BehaviorPrefix},
			's': {Behavior: BehaviorPrefix},
			'r': {Behavior: BehaviorPrefix},
			'm': {Behavior: BehaviorPrefix},
			'n': {Behavior: BehaviorPrefix},
		},

		PrefixRunes: map[rune]map[rune]KeyEntry{
			'b': {
				'f': {Behavior: BehaviorAction, IntentType: IntentRemoveFigure},
				'i': {Behavior: BehaviorAction, IntentType: IntentDisposeContainer},
			},
			's': {
				'i': {Behavior: BehaviorIndex, IntentType: IntentSelectContainer},
				'f': {Behavior: BehaviorIndex, IntentType: IntentSelectFigure},
			},
			'r': {
				'f': {Behavior: BehaviorSticky, IntentType: IntentRotateFigure},
			},
			'm': {
				'i': {Behavior: BehaviorSticky, IntentType: IntentMoveContainer},
				'f': {Behavior: BehaviorSticky, IntentType: IntentMoveFigure},
			},
			'n': {
				'i': {Behavior: BehaviorAction, IntentType: IntentNewContainer},
				'f': {Behavior: BehaviorKind, IntentType: IntentNewFigure},
			},
		},

		PrefixKeys: map[rune]map[tcell.Key]KeyEntry{
			'l': {
				tcell.KeyUp:   {Behavior: BehaviorAction, IntentType: IntentLayerUp},
				tcell.KeyDown: {Behavior: BehaviorAction, IntentType: IntentLayerDown},
			},
		},

		FigureKinds: map[rune]shape.Kind{
			'c': shape.KindCircle,
			'f': shape.KindFilledCircle,
			'e': shape.KindEllipse,
			'l': shape.KindLine,
			'o': shape.KindConus,
			'p': shape.KindPartialConus,
			'.': shape.KindDot,
		},

		IndexKeys:  make(map[tcell.Key]int, 9),
		IndexRunes: make(map[rune]int, 9),

		Arrows: map[tcell.Key][2]int{
			tcell.KeyUp:    {0, -1},
			tcell.KeyDown:  {0, 1},
			tcell.KeyLeft:  {-1, 0},
			tcell.KeyRight: {1, 0},
		},

		TurnRunes: map[rune]int{
			'q': -1,
			'e': 1,
		},
	}

	for i := 0; i < 9; i++ {
		kt.IndexKeys[tcell.KeyF1+tcell.Key(i)] = i
		kt.IndexRunes['1'+rune(i)] = i
	}
	return kt
}
