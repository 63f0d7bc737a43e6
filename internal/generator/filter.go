package generator

import (
	"context"
	"fmt"
	"regexp"

	"github.com/specialistvlad/codegengo/internal/diag"
	"github.com/specialistvlad/codegengo/internal/options"
)

// filter keeps a generator iff its name matches at least one configured
// pattern. With no patterns configured, every generator passes.
type filter struct {
	patterns []*regexp.Regexp
	enabled  bool
}

// newFilter compiles the configured name patterns. Patterns match the whole
// name. An invalid pattern is reported and ignored.
func newFilter(ctx context.Context, opts options.Map, reporter diag.Reporter) *filter {
	raw := opts.GeneratorPatterns(ctx)
	if raw == nil {
		return &filter{}
	}
	f := &filter{enabled: true}
	for _, p := range raw {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			reporter.Report(ctx, diag.Diagnostic{
				Severity: diag.SeverityError,
				Message:  fmt.Sprintf("Invalid generator name pattern %q: %v", p, err),
			})
			continue
		}
		f.patterns = append(f.patterns, re)
	}
	return f
}

func (f *filter) keep(name string) bool {
	if !f.enabled {
		return true
	}
	for _, re := range f.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
