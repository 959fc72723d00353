package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// ToolRegistry is the static catalog of tools offered to the model.
type ToolRegistry struct {
	declarations []domain.ToolDeclaration
	byName       map[string]domain.ToolDeclaration
}

// NewToolRegistry builds a registry from the given declarations. Declarations
// are kept in the canonical domain.ToolKinds order.
func NewToolRegistry(declarations ...domain.ToolDeclaration) (ToolRegistry, error) {
	byName := make(map[string]domain.ToolDeclaration, len(declarations))
	for _, d := range declarations {
		if d.Kind == domain.ToolKind_Unrecognized || d.Kind.Name() != d.Name {
			return ToolRegistry{}, fmt.Errorf("tool %q does not match a known tool kind", d.Name)
		}
		if _, exists := byName[d.Name]; exists {
			return ToolRegistry{}, fmt.Errorf("tool %q declared twice", d.Name)
		}
		for _, field := range d.RequiredFields {
			if _, ok := d.Parameters[field]; !ok {
				return ToolRegistry{}, fmt.Errorf("tool %q requires undeclared field %q", d.Name, field)
			}
		}
		byName[d.Name] = d
	}

	ordered := make([]domain.ToolDeclaration, 0, len(byName))
	for _, kind := range domain.ToolKinds {
		if d, ok := byName[kind.Name()]; ok {
			ordered = append(ordered, d)
		}
	}
	return ToolRegistry{declarations: ordered, byName: byName}, nil
}

// Declarations returns the declarations in canonical order.
func (r ToolRegistry) Declarations() []domain.ToolDeclaration {
	return slices.Clone(r.declarations)
}

// Lookup returns the declaration registered under name.
func (r ToolRegistry) Lookup(name string) (domain.ToolDeclaration, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Validate checks a call against its declaration without executing it.
func (r ToolRegistry) Validate(call domain.ToolCallRequest) (domain.ToolDeclaration, error) {
	decl, ok := r.Lookup(call.Name)
	if !ok {
		return domain.ToolDeclaration{}, domain.NewUnknownToolErr(call.Name)
	}

	args := call.Arguments
	if args == nil && call.RawArguments != "" {
		if err := json.Unmarshal([]byte(call.RawArguments), &args); err != nil {
			return decl, domain.NewInvalidArgumentsErr(call.Name, "arguments must be a JSON object")
		}
	}

	for _, field := range decl.RequiredFields {
		if v, ok := args[field]; !ok || v == nil {
			return decl, domain.NewInvalidArgumentsErr(call.Name, fmt.Sprintf("missing required field %q", field))
		}
	}

	if err := validateFields(decl.Parameters, args); err != nil {
		return decl, domain.NewInvalidArgumentsErr(call.Name, err.Error())
	}
	return decl, nil
}

func validateFields(params map[string]domain.ToolParameter, args map[string]any) error {
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		param, ok := params[name]
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		value := args[name]
		if value == nil {
			continue
		}
		if err := validateValue(param, value); err != nil {
			return fmt.Errorf("field %q %w", name, err)
		}
	}
	return nil
}

func validateValue(param domain.ToolParameter, value any) error {
	switch param.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if len(param.Enum) > 0 && !slices.Contains(param.Enum, s) {
			return fmt.Errorf("must be one of %v", param.Enum)
		}
	case "integer":
		n, ok := toFloat(value)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("must be an integer")
		}
	case "number":
		if _, ok := toFloat(value); !ok {
			return fmt.Errorf("must be a number")
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("must be a boolean")
		}
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("must be an object")
		}
		if len(param.Properties) > 0 {
			return validateFields(param.Properties, obj)
		}
	case "array":
		if _, ok := value.([]any); !ok {
			return fmt.Errorf("must be an array")
		}
	}
	return nil
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
