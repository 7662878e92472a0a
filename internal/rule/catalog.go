package rule

// paramShape describes what a rule kind requires from Param.
type paramShape int

const (
	paramNone paramShape = iota
	paramLimit
	paramValues
	paramCases
	paramChar
)

type catalogEntry struct {
	kind   Kind
	target Target
	shape  paramShape
}

// catalog is the closed set of recognized rule names. Names absent from
// it are accepted at load time for forward compatibility and flagged
// during evaluation.
var catalog = map[string]catalogEntry{
	"header-max-length": {KindMaxLength, TargetHeader, paramLimit},
	"header-min-length": {KindMinLength, TargetHeader, paramLimit},
	"header-case":       {KindCase, TargetHeader, paramCases},
	"header-full-stop":  {KindFullStop, TargetHeader, paramChar},
	"header-trim":       {KindTrim, TargetHeader, paramNone},

	"type-enum":       {KindEnum, TargetType, paramValues},
	"type-case":       {KindCase, TargetType, paramCases},
	"type-empty":      {KindEmpty, TargetType, paramNone},
	"type-max-length": {KindMaxLength, TargetType, paramLimit},
	"type-min-length": {KindMinLength, TargetType, paramLimit},

	"scope-enum":       {KindEnum, TargetScope, paramValues},
	"scope-case":       {KindCase, TargetScope, paramCases},
	"scope-empty":      {KindEmpty, TargetScope, paramNone},
	"scope-max-length": {KindMaxLength, TargetScope, paramLimit},
	"scope-min-length": {KindMinLength, TargetScope, paramLimit},

	"subject-case":       {KindCase, TargetSubject, paramCases},
	"subject-empty":      {KindEmpty, TargetSubject, paramNone},
	"subject-full-stop":  {KindFullStop, TargetSubject, paramChar},
	"subject-max-length": {KindMaxLength, TargetSubject, paramLimit},
	"subject-min-length": {KindMinLength, TargetSubject, paramLimit},
	"subject-trim":       {KindTrim, TargetSubject, paramNone},

	"body-leading-blank":   {KindLeadingBlank, TargetBody, paramNone},
	"body-empty":           {KindEmpty, TargetBody, paramNone},
	"body-case":            {KindCase, TargetBody, paramCases},
	"body-max-length":      {KindMaxLength, TargetBody, paramLimit},
	"body-min-length":      {KindMinLength, TargetBody, paramLimit},
	"body-max-line-length": {KindMaxLineLength, TargetBody, paramLimit},
	"body-full-stop":       {KindFullStop, TargetBody, paramChar},

	"footer-leading-blank":   {KindLeadingBlank, TargetFooter, paramNone},
	"footer-empty":           {KindEmpty, TargetFooter, paramNone},
	"footer-max-length":      {KindMaxLength, TargetFooter, paramLimit},
	"footer-min-length":      {KindMinLength, TargetFooter, paramLimit},
	"footer-max-line-length": {KindMaxLineLength, TargetFooter, paramLimit},
}

// KnownRule reports whether name has a matching evaluator.
func KnownRule(name string) bool {
	_, ok := catalog[name]
	return ok
}
