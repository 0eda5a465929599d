package environment

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/auditdb/stackgen/internal/environment/types"
	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/template"
	composeTypes "github.com/compose-spec/compose-go/v2/types"
)

// Extractor finds the variables a rendered compose file interpolates at
// deploy time and checks them against an environment snapshot.
type Extractor struct {
	snapshot Snapshot
}

func NewExtractor(snapshot Snapshot) *Extractor {
	return &Extractor{snapshot: snapshot}
}

// Extract returns one result per ${VAR} reference in content, sorted by name.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	configDetails := composeTypes.ConfigDetails{
		WorkingDir: ".",
		ConfigFiles: []composeTypes.ConfigFile{
			{
				Filename: filename,
				Content:  content,
			},
		},
	}

	// The raw model keeps ${VAR} references in place.
	dict, err := loader.LoadModelWithContext(ctx, configDetails, func(options *loader.Options) {
		options.SetProjectName("stackgen", true)
		options.SkipInterpolation = true
		options.ResolvePaths = false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	variables := template.ExtractVariables(dict, template.DefaultPattern)

	results := make([]types.EnvResult, 0, len(variables))
	for name, variable := range variables {
		if types.ShouldIgnore(name) {
			continue
		}

		value, set := e.snapshot.Lookup(name)
		envType, sensitive := types.ClassifyEnvVar(name, value)
		results = append(results, types.EnvResult{
			VarName:   name,
			Value:     value,
			Default:   variable.DefaultValue,
			Required:  variable.Required,
			Set:       set,
			Type:      envType,
			Sensitive: sensitive,
			Source:    e.snapshot.Source(name),
		})
	}

	slices.SortFunc(results, func(a, b types.EnvResult) int {
		return strings.Compare(a.VarName, b.VarName)
	})
	return results, nil
}

// Missing returns the names of results that are neither set nor defaulted.
func Missing(results []types.EnvResult) []string {
	var missing []string
	for _, result := range results {
		if !result.Set && result.Default == "" {
			missing = append(missing, result.VarName)
		}
	}
	return missing
}
