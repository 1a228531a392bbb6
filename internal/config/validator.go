package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VersionConstraint is the config_version range this build understands.
const VersionConstraint = "^1"

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of validating a config document.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single problem found in a config document.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/archive/separate"
	Message string
	Keyword string
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw YAML against the config schema and the supported
// config_version range. The error return is for parse or schema failures;
// validation problems are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return validateValue(raw)
}

// ValidateFile reads path and validates it.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Validate(data)
}

func validateValue(v any) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	jsonData, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var issues []ValidationIssue
	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		issues = leafIssues(ve)
	}
	if m, ok := v.(map[string]any); ok {
		if is, bad := checkVersion(m[KeyVersion]); bad {
			issues = append(issues, is)
		}
	}

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// checkVersion reports an issue when a present, well-formed config_version
// falls outside VersionConstraint. Malformed values are left to the schema.
func checkVersion(raw any) (ValidationIssue, bool) {
	if raw == nil {
		return ValidationIssue{}, false
	}
	s := strings.TrimPrefix(fmt.Sprint(raw), "v")
	ver, err := semver.NewVersion(s)
	if err != nil {
		return ValidationIssue{}, false
	}
	c, err := semver.NewConstraint(VersionConstraint)
	if err != nil || c.Check(ver) {
		return ValidationIssue{}, false
	}
	return ValidationIssue{
		Path:    "/" + KeyVersion,
		Keyword: "version",
		Message: printer.Sprintf("version %s is not supported (want %s)", ver, VersionConstraint),
	}, true
}

// leafIssues flattens the error tree to its leaves, dropping duplicates.
func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		if e.ErrorKind == nil {
			return
		}
		kw := e.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			return
		}
		is := ValidationIssue{
			Path:    "/" + strings.Join(e.InstanceLocation, "/"),
			Keyword: kw[len(kw)-1],
			Message: e.ErrorKind.LocalizedString(printer),
		}
		if len(e.InstanceLocation) == 0 {
			is.Path = ""
		}
		key := is.Path + "|" + is.Keyword + "|" + is.Message
		if !seen[key] {
			seen[key] = true
			issues = append(issues, is)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}
