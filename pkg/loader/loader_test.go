package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTasks(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantScores  []float64
		wantDescrip string
	}{
		{
			name:        "json array",
			input:       `[{"id": 1, "description": "a", "urgency": 4.6}, {"id": 2, "urgency": 1}]`,
			wantScores:  []float64{4.6, 1},
			wantDescrip: "a",
		},
		{
			name: "pretty json array",
			input: `[
{"id":1,"description":"a","urgency":4.6},
{"id":2,"urgency":1},
{"id":3,"urgency":-2.5}
]`,
			wantScores:  []float64{4.6, 1, -2.5},
			wantDescrip: "a",
		},
		{
			name:        "single json object",
			input:       `{"id": 7, "description": "solo", "urgency": 12.3}`,
			wantScores:  []float64{12.3},
			wantDescrip: "solo",
		},
		{
			name:        "wrapped json",
			input:       `{"tasks": [{"description": "w", "urgency": 2}]}`,
			wantScores:  []float64{2},
			wantDescrip: "w",
		},
		{
			name: "ndjson export",
			input: `{"id":1,"description":"first","urgency":3.2}
{"id":2,"description":"second","urgency":0}`,
			wantScores:  []float64{3.2, 0},
			wantDescrip: "first",
		},
		{
			name: "ndjson with trailing commas",
			input: `{"id":1,"description":"first","urgency":3.2},
{"id":2,"urgency":0.5},`,
			wantScores:  []float64{3.2, 0.5},
			wantDescrip: "first",
		},
		{
			name: "yaml list",
			input: `- id: 1
  description: yaml task
  urgency: 8.25
- id: 2
  urgency: 1`,
			wantScores:  []float64{8.25, 1},
			wantDescrip: "yaml task",
		},
		{
			name: "multi document yaml",
			input: `---
description: one
urgency: 1.5
---
description: two
urgency: 2.5`,
			wantScores:  []float64{1.5, 2.5},
			wantDescrip: "one",
		},
		{
			name: "toml tasks",
			input: `[[tasks]]
id = 1
description = "toml task"
urgency = 6.0

[[tasks]]
id = 2
urgency = 3`,
			wantScores:  []float64{6, 3},
			wantDescrip: "toml task",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := LoadTasks(tt.input)
			require.NoError(t, err)
			require.Len(t, tasks, len(tt.wantScores))
			for i, want := range tt.wantScores {
				assert.InDelta(t, want, tasks[i].Urgency(), 1e-9)
			}
			assert.Equal(t, tt.wantDescrip, tasks[0].Description)
		})
	}
}

func TestLoadTasksKeepsFields(t *testing.T) {
	tasks, err := LoadTasks(`[{"id": 4, "uuid": "abc", "status": "pending", "project": "home", "tags": ["x", "y"], "urgency": 5, "entry": "20240101T000000Z"}]`)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "abc", got.UUID)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "home", got.Project)
	assert.Equal(t, []string{"x", "y"}, got.Tags)
}

func TestLoadTasksErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "   ", want: "empty input"},
		{name: "bad json", input: `[{"urgency": }]`, want: "invalid JSON"},
		{name: "scalar list", input: `[1, 2]`, want: "expected a task object"},
		{name: "wrong urgency type", input: `[{"urgency": "high"}]`, want: "invalid task"},
		{name: "tasks not a list", input: `{"tasks": 3}`, want: "tasks must be a list"},
		{name: "scalar document", input: `just text`, want: "expected a task object or list"},
		{name: "broken ndjson line", input: "{\"urgency\": 1}\n{\"urgency\": 2}\n{oops}", want: "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTasks(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"urgency": 4.6}]`), 0o600))

		tasks, err := LoadFile(path, nil)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})

	t.Run("from stdin", func(t *testing.T) {
		tasks, err := LoadFile(StdinPath, strings.NewReader("urgency: 2\n"))
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, 2.0, tasks[0].Urgency())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
	})
}
