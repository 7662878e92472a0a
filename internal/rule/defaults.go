package rule

// DefaultTypes is the conventional-commits type vocabulary enforced by
// the default type-enum rule.
var DefaultTypes = []string{
	"build",
	"chore",
	"ci",
	"docs",
	"feat",
	"fix",
	"perf",
	"refactor",
	"revert",
	"style",
	"test",
}

// Conventional returns the default shared rule set. scope-enum ships
// disabled: recommended scopes are guidance, not an enforced vocabulary.
func Conventional() *Registry {
	r := NewRegistry()

	r.Add(Definition{Name: "type-enum", Severity: SeverityError, Applicability: Always, Param: Param{Values: DefaultTypes}})
	r.Add(Definition{Name: "type-case", Severity: SeverityError, Applicability: Always, Param: Param{Cases: []CaseStyle{LowerCase}}})
	r.Add(Definition{Name: "type-empty", Severity: SeverityError, Applicability: Never})

	r.Add(Definition{Name: "scope-enum", Severity: SeverityDisabled, Applicability: Always, Param: Param{Values: []string{}}})
	r.Add(Definition{Name: "scope-case", Severity: SeverityError, Applicability: Always, Param: Param{Cases: []CaseStyle{LowerCase}}})

	r.Add(Definition{Name: "subject-case", Severity: SeverityError, Applicability: Never, Param: Param{
		Cases: []CaseStyle{SentenceCase, StartCase, PascalCase, UpperCase},
	}})
	r.Add(Definition{Name: "subject-empty", Severity: SeverityError, Applicability: Never})
	r.Add(Definition{Name: "subject-full-stop", Severity: SeverityError, Applicability: Never, Param: Param{Char: "."}})

	r.Add(Definition{Name: "header-max-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: 100}})
	r.Add(Definition{Name: "header-full-stop", Severity: SeverityError, Applicability: Never, Param: Param{Char: "."}})
	r.Add(Definition{Name: "header-trim", Severity: SeverityError, Applicability: Always})

	r.Add(Definition{Name: "body-leading-blank", Severity: SeverityWarning, Applicability: Always})
	r.Add(Definition{Name: "body-max-line-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: 100}})

	r.Add(Definition{Name: "footer-leading-blank", Severity: SeverityWarning, Applicability: Always})
	r.Add(Definition{Name: "footer-max-line-length", Severity: SeverityError, Applicability: Always, Param: Param{Limit: 100}})

	return r
}
