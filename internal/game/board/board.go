// Package board models the linear game track: field types, minigame
// shortcuts, and the fixed reference layout every session plays on.
package board

import "fmt"

// FieldType classifies what happens when a pawn lands on a field.
type FieldType int

const (
	FieldWalkable FieldType = iota
	FieldPursuerStart
	FieldOccasion
	FieldMinigame
	FieldGoal
)

// MinigameKind names the minigame attached to a minigame field.
type MinigameKind int

const (
	MinigameNone MinigameKind = iota
	MinigamePantomime
	MinigameDrawing
)

func (k MinigameKind) String() string {
	switch k {
	case MinigamePantomime:
		return "pantomime"
	case MinigameDrawing:
		return "drawing"
	default:
		return "none"
	}
}

// Difficulty scales minigame word pools and pursuer pacing.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a wire label to a Difficulty.
func ParseDifficulty(label string) (Difficulty, error) {
	switch label {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q", label)
}

// Field is one position on the track. ShortcutTarget is only meaningful for
// minigame fields and names the field a minigame win jumps to.
type Field struct {
	Index          int
	Type           FieldType
	Kind           MinigameKind
	Difficulty     Difficulty
	ShortcutTarget int
}

// Board is the immutable track layout.
type Board struct {
	fields []Field
}

var occasionIndexes = []int{
	6, 8, 12, 13, 20, 24, 28, 29, 31, 36, 41, 45, 53, 54, 58,
	62, 66, 67, 68, 73, 78, 82, 85, 86, 87,
}

var minigameFields = []Field{
	{Index: 14, Type: FieldMinigame, Kind: MinigamePantomime, Difficulty: DifficultyEasy, ShortcutTarget: 18},
	{Index: 27, Type: FieldMinigame, Kind: MinigameDrawing, Difficulty: DifficultyEasy, ShortcutTarget: 33},
	{Index: 39, Type: FieldMinigame, Kind: MinigamePantomime, Difficulty: DifficultyMedium, ShortcutTarget: 42},
	{Index: 52, Type: FieldMinigame, Kind: MinigameDrawing, Difficulty: DifficultyMedium, ShortcutTarget: 57},
	{Index: 77, Type: FieldMinigame, Kind: MinigamePantomime, Difficulty: DifficultyHard, ShortcutTarget: 83},
}

const boardLength = 89

// DefaultStartPosition is where team pawns begin unless the session config
// overrides it.
const DefaultStartPosition = 4

// Build returns the reference track layout. Fields 0 through 3 form the
// pursuer runway, the last field is the goal.
func Build() *Board {
	fields := make([]Field, boardLength)
	for i := range fields {
		fields[i] = Field{Index: i, Type: FieldWalkable}
	}
	for i := 0; i < DefaultStartPosition; i++ {
		fields[i].Type = FieldPursuerStart
	}
	for _, i := range occasionIndexes {
		fields[i].Type = FieldOccasion
	}
	for _, f := range minigameFields {
		fields[f.Index] = f
	}
	fields[boardLength-1].Type = FieldGoal
	return &Board{fields: fields}
}

// Len returns the number of fields on the track.
func (b *Board) Len() int {
	return len(b.fields)
}

// GoalIndex returns the index of the final field.
func (b *Board) GoalIndex() int {
	return len(b.fields) - 1
}

// At returns the field at index i. Indexes past the goal clamp to the goal so
// overshooting rolls resolve on the final field.
func (b *Board) At(i int) Field {
	if i < 0 {
		i = 0
	}
	if i >= len(b.fields) {
		i = len(b.fields) - 1
	}
	return b.fields[i]
}

// Next returns the field after index i, clamped to the goal.
func (b *Board) Next(i int) Field {
	return b.At(i + 1)
}
