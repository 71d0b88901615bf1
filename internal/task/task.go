// Package task holds the task record rendered by report columns.
package task

// Task is one exported task. Only the fields the report reads are decoded;
// everything else in the input is ignored.
type Task struct {
	ID          int      `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	UUID        string   `json:"uuid,omitempty" yaml:"uuid,omitempty" toml:"uuid,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	Project     string   `json:"project,omitempty" yaml:"project,omitempty" toml:"project,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`

	// Score is the externally computed urgency.
	Score float64 `json:"urgency" yaml:"urgency" toml:"urgency"`
}

// Urgency returns the urgency score.
func (t Task) Urgency() float64 {
	return t.Score
}

// Map exposes the task as a map for expression evaluation.
func (t Task) Map() map[string]any {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"id":          int64(t.ID),
		"uuid":        t.UUID,
		"description": t.Description,
		"status":      t.Status,
		"project":     t.Project,
		"tags":        tags,
		"urgency":     t.Score,
	}
}
