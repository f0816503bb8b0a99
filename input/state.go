package input

// InputMode is the top-level parser context
type InputMode uint8

const (
	ModeNormal  InputMode = iota
	ModePrompt            // typing a file name
	ModeOverlay           // info view shown, any key closes it
)

// InputState tracks the Normal-mode key sequence
type InputState uint8

const (
	StateIdle         InputState = iota // Awaiting the first key of a command
	StatePrefix                         // After b, l, s, r, m or n, awaiting the second key
	StateIndexWait                      // After c, s i or s f, awaiting F1..F9 or 1..9
	StateNewFigure                      // After n f, awaiting the figure key
	StateStickyMove                     // After m i or m f, arrows repeat until another key
	StateStickyRotate                   // After r f, q and e repeat until another key
)

// PromptKind is what a confirmed prompt does with its text
type PromptKind uint8

const (
	PromptNone PromptKind = iota
	PromptSave
	PromptLoad
)

var promptLabels = map[PromptKind]string{
	PromptSave: "Name of file to save: ",
	PromptLoad: "Name of file to load: ",
}
