package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

type DomainTestSuite struct {
	suite.Suite
}

func (s *DomainTestSuite) TestErrorMessages() {
	var e error

	e = domain.ErrFilterKind{Type: "int"}
	s.Equal("filter int is not a struct type", e.Error())

	e = domain.ErrBaseKind{Type: "string"}
	s.Equal("base string is not a struct type", e.Error())

	e = domain.ErrNotHandle{Field: "Name", Type: "string"}
	s.Equal("filter field Name of type string is not a field handle", e.Error())

	e = domain.ErrUnknownField{Field: "nope"}
	s.Equal(`no field "nope" in the base struct`, e.Error())

	e = domain.ErrHandleType{Field: "age", Want: "int64", Got: "string"}
	s.Equal("handle for age should be of type int64, got string", e.Error())

	e = domain.ErrFieldKind{Op: "contains", Field: "age", Kind: domain.KindInt}
	s.Equal("contains requires a string field, age is int", e.Error())

	e = domain.ErrOperandType{Op: "contains", Want: "string", Got: 42}
	s.Equal("contains operand should be of type string, got int", e.Error())

	e = domain.ErrCondArg{Got: 1.5}
	s.Equal("argument should be a Condition or bool, got float64", e.Error())

	e = domain.ErrFieldArg{Got: 42}
	s.Equal("field should be a Field or string, got int", e.Error())

	e = domain.ErrRecordType{Want: "domain_test.A", Got: "domain_test.B"}
	s.Equal("record should be of type domain_test.A, got domain_test.B", e.Error())

	e = domain.ErrRecordKind{Got: []int{1}}
	s.Equal("cannot build a document from []int", e.Error())

	e = &domain.ErrTargetNil{}
	s.Equal("target interface is nil", e.Error())

	e = domain.ErrDecode{Source: 123, Target: "a"}
	s.Equal("cannot decode 123 into string", e.Error())
}

func (s *DomainTestSuite) TestKindString() {
	names := map[domain.Kind]string{
		domain.KindInvalid: "invalid",
		domain.KindString:  "string",
		domain.KindBool:    "bool",
		domain.KindInt:     "int",
		domain.KindUint:    "uint",
		domain.KindFloat:   "float",
		domain.KindTime:    "time",
		domain.KindBytes:   "bytes",
		domain.KindList:    "list",
		domain.KindMap:     "map",
		domain.KindStruct:  "struct",
		domain.KindAny:     "any",
	}
	for kind, name := range names {
		s.Equal(name, kind.String())
	}
	s.Equal("invalid", domain.Kind(250).String())
}

func TestDomainTestSuite(t *testing.T) {
	suite.Run(t, new(DomainTestSuite))
}
