package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/the-pinbo/ROBDD/internal/errs"
)

// Config is the optional run configuration (SPEC_FULL §1.5): CLI flags
// alone are sufficient to run the driver (spec §6's "no environment
// variables" contract is unaffected), but when a config file is given it
// is schema-validated rather than trusted blindly, the same posture the
// teacher's core/types.Validator takes toward decorator parameter
// schemas.
type Config struct {
	SchemaVersion string `json:"schemaVersion" yaml:"schemaVersion"`
	InDir         string `json:"inDir" yaml:"inDir"`
	OutDir        string `json:"outDir" yaml:"outDir"`
	CommandFile   string `json:"commandFile" yaml:"commandFile"`
}

// configSchema is the JSON Schema every config file must satisfy,
// compiled once per LoadConfig call via santhosh-tekuri/jsonschema - the
// exact library and Draft2020 compile pattern the teacher uses in
// core/types.Validator.compileSchema.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schemaVersion", "inDir", "outDir", "commandFile"],
  "properties": {
    "schemaVersion": {"type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$"},
    "inDir": {"type": "string", "minLength": 1},
    "outDir": {"type": "string", "minLength": 1},
    "commandFile": {"type": "string", "minLength": 1}
  }
}`

// minSupportedSchemaVersion is the oldest config schemaVersion this
// driver still accepts, compared with golang.org/x/mod/semver exactly as
// the teacher's validator imports semver alongside jsonschema.
const minSupportedSchemaVersion = "v1.0.0"

// LoadConfig reads a YAML or JSON run-configuration file (by extension),
// validates its shape against configSchema, and checks schemaVersion
// compatibility.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errs.IOFailure(path, err)
	}

	doc, err := toJSONMap(path, raw)
	if err != nil {
		return Config{}, errs.BadConfig(path, err)
	}
	if err := validateAgainstSchema(doc); err != nil {
		return Config{}, errs.BadConfig(path, err)
	}

	var cfg Config
	if err := mapToConfig(doc, &cfg); err != nil {
		return Config{}, errs.BadConfig(path, err)
	}

	if !semver.IsValid(cfg.SchemaVersion) {
		return Config{}, errs.BadConfig(path, fmt.Errorf("schemaVersion %q is not valid semver", cfg.SchemaVersion))
	}
	if semver.Compare(cfg.SchemaVersion, minSupportedSchemaVersion) < 0 {
		return Config{}, errs.BadConfig(path, fmt.Errorf("schemaVersion %q predates the minimum supported %q",
			cfg.SchemaVersion, minSupportedSchemaVersion))
	}

	return cfg, nil
}

func toJSONMap(path string, raw []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return doc, nil
}

func mapToConfig(doc map[string]interface{}, cfg *Config) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func validateAgainstSchema(doc map[string]interface{}) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const url = "schema://config.json"
	if err := compiler.AddResource(url, strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
