package query

import "github.com/lyraproj/issue/issue"

const (
	ExpectedMapping  = `MOONY_EXPECTED_MAPPING`
	ExpectedProducer = `MOONY_EXPECTED_PRODUCER`
	ExpectedSequence = `MOONY_EXPECTED_SEQUENCE`
	MissingMapper    = `MOONY_MISSING_MAPPER`
	MissingPredicate = `MOONY_MISSING_PREDICATE`
)

func init() {
	issue.Hard(ExpectedMapping, `Expected a mapping (Go map), got '%{actual}'`)

	issue.Hard(ExpectedProducer, `Expected a producer factory, got '%{actual}'`)

	issue.Hard(ExpectedSequence, `Expected a sequence (Go slice or array), got '%{actual}'`)

	issue.Hard(MissingMapper, `%{operation} requires a mapper function`)

	issue.Hard(MissingPredicate, `%{operation} requires a predicate function`)
}

func illegalArgument(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}
