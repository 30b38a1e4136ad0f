package profile

import (
	"fmt"

	"fillable/internal/common"
	"fillable/internal/diagnostic"
	"fillable/internal/naming"
)

// Diagnostic codes reported by Validate.
const (
	CodeBadVersion    = "BAD_VERSION"
	CodeEmptyName     = "EMPTY_NAME"
	CodeDuplicateName = "DUPLICATE_NAME"
	CodeQueryOverlap  = "QUERY_OVERLAP"
	CodeDuplicateKey  = "DUPLICATE_KEY"
	CodeEmptyQuery    = "EMPTY_QUERY"
	CodeSimilarKey    = "SIMILAR_KEY"
)

// Validate checks a parsed file and reports every finding.
func Validate(f *File) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if f.Version != CurrentVersion {
		d.AddError(CodeBadVersion, fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	names := make([]string, 0, len(f.Profiles))

	for i := range f.Profiles {
		p := &f.Profiles[i]

		if p.Name == "" {
			d.AddError(CodeEmptyName, fmt.Sprintf("profile #%d has no name", i), "", "")
		} else {
			names = append(names, p.Name)
		}

		validateProfile(p, &d)
	}

	for _, name := range common.Duplicates(names) {
		d.AddError(CodeDuplicateName, "profile name is used more than once", name, "")
	}

	return d
}

func validateProfile(p *Profile, d *diagnostic.Diagnostics) {
	if p.Only.IsEmpty() && p.Exclude.IsEmpty() {
		d.AddInfo(CodeEmptyQuery, "profile restricts no keys", p.Name, "")
	}

	for _, key := range common.Intersect(p.Only, p.Exclude) {
		d.AddWarning(CodeQueryOverlap, "key is both allowed and excluded, it will be excluded", p.Name, key)
	}

	for _, only := range p.Only {
		for _, exclude := range p.Exclude {
			if naming.Similar(only, exclude) {
				d.AddWarning(CodeSimilarKey,
					fmt.Sprintf("looks like excluded key %q, keys are compared exactly", exclude), p.Name, only)
			}
		}
	}

	for _, key := range common.Duplicates(p.Only) {
		d.AddInfo(CodeDuplicateKey, "key is listed twice in only", p.Name, key)
	}

	for _, key := range common.Duplicates(p.Exclude) {
		d.AddInfo(CodeDuplicateKey, "key is listed twice in exclude", p.Name, key)
	}
}
