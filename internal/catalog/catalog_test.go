package catalog

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestNames(t *testing.T) {
	t.Parallel()

	want := []string{TranslateText, TranslateFile, ListSupportedLanguages}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestTools_RequiredArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		required []string
	}{
		{TranslateText, []string{"texts", "targetLanguage"}},
		{TranslateFile, []string{"fileContent", "targetLanguage"}},
		{ListSupportedLanguages, nil},
	}

	tools := Tools()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			idx := slices.IndexFunc(tools, func(tool mcp.Tool) bool { return tool.Name == tt.name })
			if idx < 0 {
				t.Fatalf("tool %q not in catalog", tt.name)
			}
			got := tools[idx].InputSchema.Required
			if len(got) == 0 && len(tt.required) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.required) {
				t.Errorf("required = %v, want %v", got, tt.required)
			}
		})
	}
}

func TestTools_HaveDescriptions(t *testing.T) {
	t.Parallel()

	for _, s := range Summaries() {
		if s.Description == "" {
			t.Errorf("tool %q has no description", s.Name)
		}
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	out, err := JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded []struct {
		Name        string `json:"name"`
		InputSchema struct {
			Type       string         `json:"type"`
			Properties map[string]any `json:"properties"`
		} `json:"inputSchema"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("catalog JSON does not decode: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("decoded %d tools, want 3", len(decoded))
	}
	for _, tool := range decoded {
		if tool.InputSchema.Type != "object" {
			t.Errorf("%s inputSchema.type = %q, want object", tool.Name, tool.InputSchema.Type)
		}
	}
	if _, ok := decoded[0].InputSchema.Properties["texts"]; !ok {
		t.Error("translate_text schema lacks the texts property")
	}
}
