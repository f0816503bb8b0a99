package input

import "github.com/lixenwraith/vi-canvas/shape"

// IntentType discriminates editor commands
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // Ctrl+C, Ctrl+Q
	IntentEscape // Esc outside a sequence
	IntentResize // terminal resize

	// Info view
	IntentInfo         // v
	IntentOverlayClose // any key while the info view is shown

	// Container
	IntentNewContainer       // n i
	IntentSelectContainer    // s i + index
	IntentMoveContainer      // m i + arrows (sticky)
	IntentContainerScaleUp   // F12
	IntentContainerScaleDown // F10
	IntentLayerUp            // l Up
	IntentLayerDown          // l Down
	IntentDisposeContainer   // b i
	IntentMerge              // c + index

	// Figure
	IntentNewFigure       // n f + kind key
	IntentSelectFigure    // s f + index
	IntentMoveFigure      // m f + arrows (sticky)
	IntentRotateFigure    // r f + q/e (sticky)
	IntentFigureScaleUp   // u
	IntentFigureScaleDown // d
	IntentRemoveFigure    // b f

	// Persistence
	IntentSavePrompt // j, opens the prompt
	IntentLoadPrompt // p, opens the prompt
	IntentSave       // prompt confirmed, Text holds the name
	IntentLoad       // prompt confirmed, Text holds the name

	// Prompt editing
	IntentTextChar
	IntentTextBackspace
	IntentTextCancel
)

var intentNames = map[IntentType]string{
	IntentQuit:               "quit",
	IntentEscape:             "escape",
	IntentResize:             "resize",
	IntentInfo:               "info",
	IntentOverlayClose:       "close info",
	IntentNewContainer:       "new container",
	IntentSelectContainer:    "select container",
	IntentMoveContainer:      "move container",
	IntentContainerScaleUp:   "grow container",
	IntentContainerScaleDown: "shrink container",
	IntentLayerUp:            "layer up",
	IntentLayerDown:          "layer down",
	IntentDisposeContainer:   "dispose container",
	IntentMerge:              "merge",
	IntentNewFigure:          "new figure",
	IntentSelectFigure:       "select figure",
	IntentMoveFigure:         "move figure",
	IntentRotateFigure:       "rotate figure",
	IntentFigureScaleUp:      "grow figure",
	IntentFigureScaleDown:    "shrink figure",
	IntentRemoveFigure:       "remove figure",
	IntentSavePrompt:         "save prompt",
	IntentLoadPrompt:         "load prompt",
	IntentSave:               "save",
	IntentLoad:               "load",
	IntentTextChar:           "type",
	IntentTextBackspace:      "backspace",
	IntentTextCancel:         "cancel",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "none"
}

// Intent is a parsed editor command
// Pure data: the editor decides what it means for the current selection
type Intent struct {
	Type    IntentType
	Index   int        // 0-based selection or merge index
	DX, DY  int        // unit move direction; the editor scales it
	Turn    int        // -1 counter-clockwise, +1 clockwise
	Kind    shape.Kind // figure kind for IntentNewFigure
	Char    rune       // typed character in the prompt
	Text    string     // confirmed prompt text
	Command string     // key sequence that produced the intent
}
