package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	yaml "go.yaml.in/yaml/v3"

	"github.com/abhisek/lexiz/internal/achievements"
)

// ErrInvalidMetrics wraps schema and decode failures of a metrics file.
var ErrInvalidMetrics = errors.New("invalid metrics")

const schemaURL = "schema://lexiz/metrics.json"

// metricsSchema accepts the five counters as non-negative integers. Missing
// counters read as zero.
const metricsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "wordsLearned":      {"type": "integer", "minimum": 0},
    "streak":            {"type": "integer", "minimum": 0},
    "xp":                {"type": "integer", "minimum": 0},
    "articlesRead":      {"type": "integer", "minimum": 0},
    "practiceCompleted": {"type": "integer", "minimum": 0}
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(metricsSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// FileSource reads a YAML or JSON metrics file on every Snapshot.
type FileSource struct {
	Path string
}

func (f FileSource) Snapshot(ctx context.Context) (achievements.Metrics, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return achievements.Metrics{}, fmt.Errorf("read metrics file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML or JSON metrics document.
func Parse(data []byte) (achievements.Metrics, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return achievements.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator wants JSON values, so round-trip the YAML tree.
	raw, err := json.Marshal(doc)
	if err != nil {
		return achievements.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return achievements.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}

	sch, err := schema()
	if err != nil {
		return achievements.Metrics{}, fmt.Errorf("compile metrics schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return achievements.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}

	var m achievements.Metrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return achievements.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}
	return m, nil
}
