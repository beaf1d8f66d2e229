// Package wizard provides the interactive huh-based prompts used when
// install or uninstall runs without the flags that answer them.
package wizard

import "errors"

// Key source choices offered when no API key is configured.
const (
	KeyChoicePaste   = "paste"
	KeyChoiceDemo    = "demo"
	KeyChoiceBrowser = "browser"
)

// Question IDs understood by saveAnswer.
const (
	QuestionTarget    = "target"
	QuestionKeyChoice = "key_choice"
	QuestionAPIKey    = "api_key"
)

// Result holds the user's answers.
type Result struct {
	Target    string // Target name, or "all" for uninstall
	KeyChoice string // One of the KeyChoice constants
	APIKey    string // Pasted key, empty unless KeyChoice is KeyChoicePaste
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Secret      bool               // Mask input as it is typed
	Validate    func(string) error // Extra validation for input questions
	Condition   func(*Result) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
