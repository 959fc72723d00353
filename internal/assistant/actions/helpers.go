package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/domain"
)

// decodeArguments decodes the call arguments into target.
func decodeArguments(call domain.ToolCallRequest, target any) error {
	arguments := call.RawArguments
	if call.Arguments != nil {
		b, err := json.Marshal(call.Arguments)
		if err != nil {
			return domain.NewInvalidArgumentsErr(call.Name, err.Error())
		}
		arguments = string(b)
	}
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	if err := unmarshalActionInput(arguments, target); err != nil {
		return domain.NewInvalidArgumentsErr(call.Name, err.Error())
	}
	return nil
}

// unmarshalActionInput unmarshals the action input from a JSON string into
// the target struct, ensuring that only a single JSON object is present and
// that there are no unknown fields.
func unmarshalActionInput(arguments string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("action arguments must contain a single JSON object")
}
