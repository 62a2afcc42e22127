package scenario

import (
	"embed"
	"path"
	"sort"

	"github.com/pkg/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the bundled scenarios in file order.
func Builtin() ([]*Scenario, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, errors.Wrap(err, "read builtin scenarios")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []*Scenario
	for _, name := range names {
		data, err := builtinFS.ReadFile(path.Join("builtin", name))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		scenarios, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "builtin %s", name)
		}
		out = append(out, scenarios...)
	}
	return out, nil
}
