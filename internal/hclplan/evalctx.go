package hclplan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext builds the variables visible to argument expressions of the
// plan file at path:
//
//	env.NAME   process environment variables
//	plan.dir   directory containing the plan file
//	plan.file  the plan file itself
func newEvalContext(path string, environ []string) *hcl.EvalContext {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envValue(environ),
			"plan": cty.ObjectVal(map[string]cty.Value{
				"dir":  cty.StringVal(filepath.Dir(abs)),
				"file": cty.StringVal(abs),
			}),
		},
	}
}

func envValue(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			vals[pair[0]] = cty.StringVal(pair[1])
		}
	}
	if len(vals) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vals)
}

// processEnviron is swapped in tests.
var processEnviron = os.Environ
