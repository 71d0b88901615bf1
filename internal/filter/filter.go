// Package filter selects tasks with a CEL expression bound to the variable "task".
//
// Examples:
//
//	task.urgency > 5.0
//	task.status == "pending" && "home" in task.tags
package filter

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/tasklist/internal/task"
)

// Filter is a compiled task predicate. The zero value and nil match every task.
type Filter struct {
	expr string
	prg  cel.Program
}

// New compiles expr. A blank expression yields a filter that matches everything.
func New(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{}, nil
	}

	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expr, issues.Err())
	}
	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("filter %q must evaluate to bool, got %s", expr, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("task", cel.MapType(cel.StringType, cel.DynType)),
		cel.CrossTypeNumericComparisons(true),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Match evaluates the filter against t.
func (f *Filter) Match(t task.Task) (bool, error) {
	if f == nil || f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{"task": t.Map()})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %s, want bool", f.expr, out.Type().TypeName())
	}
	return b, nil
}

// Apply keeps the tasks the filter matches, preserving order.
func (f *Filter) Apply(tasks []task.Task) ([]task.Task, error) {
	if f == nil || f.prg == nil {
		return tasks, nil
	}
	kept := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, t)
		}
	}
	return kept, nil
}
