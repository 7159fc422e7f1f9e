package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/freshmc/pulse/pkg/domain/tracking"
)

// snapshotSchemaJSON validates module snapshots exported by the tracker
// frontend before they reach the workspace. The engine itself tolerates
// missing optional fields; the import boundary is where genuinely malformed
// records get rejected.
const snapshotSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["modules"],
  "properties": {
    "project": { "type": "string" },
    "modules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "status"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "title": { "type": "string", "minLength": 1 },
          "status": { "type": "string" },
          "priority": { "enum": ["low", "medium", "high", ""] },
          "assigned_to": { "type": "string" },
          "dependencies": { "type": "array", "items": { "type": "string" } },
          "due_date": { "type": "string" },
          "completed_date": { "type": "string" },
          "created_at": { "type": "string" }
        }
      }
    }
  }
}`

var snapshotSchemaLoader = gojsonschema.NewStringLoader(snapshotSchemaJSON)

// ParseSnapshot validates a JSON snapshot against the schema and unmarshals
// it. The returned error lists every schema violation, not just the first.
func ParseSnapshot(data []byte) (*tracking.Snapshot, error) {
	result, err := gojsonschema.Validate(snapshotSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("snapshot does not match schema: %s", strings.Join(problems, "; "))
	}

	var snapshot tracking.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
