// Package loader reads task exports in JSON, NDJSON, YAML or TOML.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tasklist/internal/task"
)

// StdinPath selects standard input in LoadFile.
const StdinPath = "-"

var (
	// Pattern for TOML section headers: [section] or [[array]], with bare,
	// quoted or dotted keys. JSON arrays like [1, 2] do not match.
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)

	// Pattern for TOML key = value (YAML uses key: value).
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// LoadTasks parses tasks from input, auto-detecting the format:
//   - a JSON array of tasks, a single task object, or {"tasks": [...]}
//   - newline-delimited JSON, one task per line (the `task export` line form)
//   - YAML, single or multi-document, with the same shapes as JSON
//   - TOML with a [[tasks]] array
func LoadTasks(input string) ([]task.Task, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	docs, err := loadDocuments(input)
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	for i, doc := range docs {
		found, err := tasksFromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		tasks = append(tasks, found...)
	}
	return tasks, nil
}

// LoadReader reads all of r and parses it with LoadTasks.
func LoadReader(r io.Reader) ([]task.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadTasks(string(data))
}

// LoadFile parses tasks from path, or from stdin when path is "-".
func LoadFile(path string, stdin io.Reader) ([]task.Task, error) {
	if path == StdinPath {
		return LoadReader(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadTasks(string(data))
}

func loadDocuments(input string) ([]interface{}, error) {
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return loadMultiDocYAML(input)
	}

	lines := strings.Split(input, "\n")
	if len(lines) > 1 && !strings.HasPrefix(input, "[") && isLikelyNDJSON(lines) {
		return loadNDJSON(lines)
	}

	// TOML [section] headers look like JSON arrays, so check TOML first.
	if isLikelyTOML(lines) {
		return loadTOML(input)
	}

	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return loadJSON(input)
	}
	return loadYAML(input)
}

// tasksFromDocument accepts a list of tasks, a map with a "tasks" list, or a single task.
func tasksFromDocument(doc interface{}) ([]task.Task, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return decodeTasks(v)
	case map[string]interface{}:
		if list, ok := v["tasks"]; ok {
			items, ok := list.([]interface{})
			if !ok {
				return nil, fmt.Errorf("tasks must be a list, got %T", list)
			}
			return decodeTasks(items)
		}
		t, err := decodeTask(v)
		if err != nil {
			return nil, err
		}
		return []task.Task{t}, nil
	default:
		return nil, fmt.Errorf("expected a task object or list, got %T", doc)
	}
}

func decodeTasks(items []interface{}) ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(items))
	for i, item := range items {
		t, err := decodeTask(item)
		if err != nil {
			return nil, fmt.Errorf("task [%d]: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// decodeTask converts a generic node via JSON so the json tags on task.Task
// apply regardless of the input format.
func decodeTask(item interface{}) (task.Task, error) {
	var t task.Task
	if _, ok := item.(map[string]interface{}); !ok {
		return t, fmt.Errorf("expected a task object, got %T", item)
	}
	data, err := json.Marshal(item)
	if err != nil {
		return t, fmt.Errorf("cannot marshal task: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("invalid task: %w", err)
	}
	return t, nil
}

func loadJSON(input string) ([]interface{}, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []interface{}{data}, nil
}

func loadYAML(input string) ([]interface{}, error) {
	var data interface{}
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []interface{}{data}, nil
}

func loadMultiDocYAML(input string) ([]interface{}, error) {
	var results []interface{}
	decoder := yaml.NewDecoder(strings.NewReader(input))

	for {
		var doc interface{}
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no documents found in multi-document YAML")
	}
	return results, nil
}

// loadNDJSON parses one JSON value per non-empty line. Unlike free-form data,
// a task export line that is not JSON is an error.
func loadNDJSON(lines []string) ([]interface{}, error) {
	results := make([]interface{}, 0, len(lines))
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// `task export` may separate objects with trailing commas.
		line = strings.TrimSuffix(line, ",")

		var obj interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", n+1, err)
		}
		results = append(results, obj)
	}
	return results, nil
}

// isLikelyNDJSON requires more than one non-empty line and a majority
// starting with '{'. A pretty-printed JSON array starts with '[' and its
// objects are indented on their own lines, so it is not matched here.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(strings.TrimSuffix(trimmed, ","), "}") {
			jsonCount++
		}
	}
	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

func isLikelyTOML(lines []string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++

		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}

func loadTOML(input string) ([]interface{}, error) {
	var data map[string]interface{}
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []interface{}{data}, nil
}
