package wizard

import "strings"

// AllTargets is the select value meaning every target.
const AllTargets = "all"

// TargetQuestion asks which environment to act on. When includeAll is set
// an extra option selects every target.
func TargetQuestion(title string, targets []Option, includeAll bool) Question {
	opts := append([]Option(nil), targets...)
	if includeAll {
		opts = append(opts, Option{Label: "All", Value: AllTargets, Desc: "every supported environment"})
	}
	def := ""
	if len(opts) > 0 {
		def = opts[0].Value
	}
	return Question{
		ID:      QuestionTarget,
		Type:    QuestionTypeSelect,
		Title:   title,
		Options: opts,
		Default: def,
	}
}

// APIKeyQuestions asks how to obtain an API key and, for the paste choice,
// reads it with masked input. validate checks the pasted key.
func APIKeyQuestions(validate func(string) error) []Question {
	return []Question{
		{
			ID:          QuestionKeyChoice,
			Type:        QuestionTypeSelect,
			Title:       "How would you like to provide your API key?",
			Description: "An API key connects the i18n-agent tools to your account.",
			Options: []Option{
				{Label: "Paste my API key", Value: KeyChoicePaste},
				{Label: "Use the demo key", Value: KeyChoiceDemo, Desc: "limited usage"},
				{Label: "Get an API key", Value: KeyChoiceBrowser, Desc: "opens the dashboard in your browser"},
			},
			Default: KeyChoicePaste,
		},
		{
			ID:       QuestionAPIKey,
			Type:     QuestionTypeInput,
			Title:    "Enter your i18n-agent API key",
			Secret:   true,
			Validate: validate,
			Condition: func(r *Result) bool {
				return r.KeyChoice == KeyChoicePaste
			},
		},
	}
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case QuestionTarget:
		result.Target = value
	case QuestionKeyChoice:
		result.KeyChoice = value
	case QuestionAPIKey:
		result.APIKey = strings.TrimSpace(value)
	}
}
