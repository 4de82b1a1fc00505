package gequery_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gequery"
	"go.mongodb.org/mongo-driver/bson"
)

type A = []any

type User struct {
	ID    string   `bson:"_id"`
	Name  string   `bson:"name"`
	Age   int64    `bson:"age"`
	Email *string  `bson:"email,omitempty"`
	Tags  []string `bson:"tags"`
}

type UserFilter struct {
	User
	Name  gequery.Field[string]
	Age   gequery.Field[int64]
	Email gequery.Field[string]
	Tags  gequery.Field[[]string]
}

type GequeryTestSuite struct {
	suite.Suite
	schema *gequery.Schema[UserFilter]
	f      *UserFilter
}

func (s *GequeryTestSuite) SetupTest() {
	s.schema = gequery.MustBind[UserFilter]()
	s.f = s.schema.Fields()
}

func (s *GequeryTestSuite) query(parts ...any) gequery.Query {
	q, err := gequery.NewQuery(parts...)
	s.Require().NoError(err)
	return q
}

func (s *GequeryTestSuite) TestEquality() {
	q := s.query(s.f.Name.Eq("ana"))
	s.Equal(gequery.Query{"name": "ana"}, q)
}

func (s *GequeryTestSuite) TestComparisons() {
	cases := map[string]struct {
		cond gequery.Cond
		want gequery.Query
	}{
		"gt":  {s.f.Age.Gt(18), gequery.Query{"age": M{"$gt": int64(18)}}},
		"gte": {s.f.Age.Gte(18), gequery.Query{"age": M{"$gte": int64(18)}}},
		"lt":  {s.f.Age.Lt(60), gequery.Query{"age": M{"$lt": int64(60)}}},
		"lte": {s.f.Age.Lte(60), gequery.Query{"age": M{"$lte": int64(60)}}},
	}
	for name, tc := range cases {
		s.Equal(tc.want, s.query(tc.cond), name)
	}
}

func (s *GequeryTestSuite) TestConjunction() {
	q := s.query(s.f.Name.Eq("ana"), s.f.Age.Gt(18))
	s.Equal(gequery.Query{
		"name": "ana",
		"age":  M{"$gt": int64(18)},
	}, q)

	chained := s.query(gequery.And(s.f.Name.Eq("ana")).And(s.f.Age.Gt(18)))
	s.Equal(q, chained)
}

// TestRepeatedEquality folds same-field equalities into a list of
// acceptable values.
func (s *GequeryTestSuite) TestRepeatedEquality() {
	q := s.query(s.f.Name.Eq("ana"), s.f.Name.Eq("bia"))
	s.Equal(gequery.Query{"name": A{"ana", "bia"}}, q)

	q = s.query(s.f.Name.Eq("ana"), s.f.Name.Eq("bia"), s.f.Name.Eq("cris"))
	s.Equal(gequery.Query{"name": A{"ana", "bia", "cris"}}, q)
}

// TestMixedComparisons folds bound comparisons of different operators the
// same way.
func (s *GequeryTestSuite) TestMixedComparisons() {
	q := s.query(s.f.Age.Gt(18), s.f.Age.Lt(60))
	s.Equal(gequery.Query{
		"age": A{M{"$gt": int64(18)}, M{"$lt": int64(60)}},
	}, q)
}

func (s *GequeryTestSuite) TestAnyOf() {
	q := s.query(s.f.Name.AnyOf("ana", "bia"))
	s.Equal(gequery.Query{"name": A{"ana", "bia"}}, q)
}

func (s *GequeryTestSuite) TestContains() {
	q := s.query(s.f.Name.Contains("an"))
	s.Equal(gequery.Query{"name": M{"$regex": "an"}}, q)
}

// TestContainsKind rejects containment on non-string fields when the query
// is built.
func (s *GequeryTestSuite) TestContainsKind() {
	h, err := s.schema.Field("age")
	s.Require().NoError(err)

	_, err = gequery.NewQuery(h.Contains("an"))
	var errKind gequery.ErrFieldKind
	s.Require().ErrorAs(err, &errKind)
	s.Equal("age", errKind.Field)
}

func (s *GequeryTestSuite) TestExists() {
	q := s.query(gequery.Exists(s.f.Email), gequery.Exists("banned"))
	s.Equal(gequery.Query{
		"email":  M{"$exists": true},
		"banned": M{"$exists": true},
	}, q)
}

func (s *GequeryTestSuite) TestRegex() {
	q := s.query(gequery.RegexQuery(s.f.Name, regexp.MustCompile("^an")))
	s.Equal(gequery.Query{"name": M{"$regex": "^an"}}, q)

	_, err := gequery.NewQuery(gequery.RegexQuery(s.f.Name, nil))
	s.ErrorIs(err, gequery.ErrNilPattern)
}

// TestBooleans accepts literal predicates as no-op arguments.
func (s *GequeryTestSuite) TestBooleans() {
	q := s.query(true, s.f.Name.Eq("ana"), false)
	s.Equal(gequery.Query{"name": "ana"}, q)

	s.Equal(gequery.Query{}, s.query(true))
}

func (s *GequeryTestSuite) TestOr() {
	adults := s.query(s.f.Age.Gte(18))
	named := s.query(s.f.Name.Eq("ana"))

	q := adults.Or(named)
	s.Equal(gequery.Query{"$or": []gequery.Query{
		{"age": M{"$gte": int64(18)}},
		{"name": "ana"},
	}}, q)

	// operands stay usable on their own
	s.Equal(gequery.Query{"age": M{"$gte": int64(18)}}, adults)
	s.Equal(gequery.Query{"name": "ana"}, named)
}

// TestCondReuse lets one condition feed several queries without sharing
// storage.
func (s *GequeryTestSuite) TestCondReuse() {
	base := gequery.And(s.f.Age.Gte(18))

	q1 := s.query(base.And(s.f.Name.Eq("ana")))
	q2 := s.query(base.And(s.f.Name.Eq("bia")))

	s.Equal(gequery.Query{"age": M{"$gte": int64(18)}, "name": "ana"}, q1)
	s.Equal(gequery.Query{"age": M{"$gte": int64(18)}, "name": "bia"}, q2)
	s.Equal(gequery.Query{"age": M{"$gte": int64(18)}}, s.query(base))
}

func (s *GequeryTestSuite) TestBSON() {
	q := s.query(s.f.Name.Eq("ana"))
	s.Equal(bson.M{"name": "ana"}, q.BSON())
}

func (s *GequeryTestSuite) TestRoundTrip() {
	email := uuid.NewString()
	rec := User{
		ID:    uuid.NewString(),
		Name:  "ana",
		Age:   30,
		Email: &email,
		Tags:  []string{"a", "b"},
	}

	doc, err := s.schema.Document(rec)
	s.Require().NoError(err)
	s.Equal(rec.ID, doc["_id"])

	var back User
	s.Require().NoError(s.schema.Decode(doc, &back))
	s.Equal(rec, back)
}

// TestOptions runs a bind configured entirely through the root wrappers.
func (s *GequeryTestSuite) TestOptions() {
	schema := gequery.MustBind[UserFilter](
		gequery.WithTag("bson"),
		gequery.WithDocumentFactory(gequery.NewDocumentFactory(gequery.WithDocumentTag("bson"))),
		gequery.WithDecoder(gequery.NewDecoder(gequery.WithDecoderTag("bson"))),
	)

	doc, err := schema.Document(User{ID: "u1", Name: "ana"})
	s.Require().NoError(err)
	s.Equal("u1", doc["_id"])

	var back User
	s.Require().NoError(schema.Decode(doc, &back))
	s.Equal("ana", back.Name)
}

// TestDecodeHookOption converts string timestamps while decoding.
func (s *GequeryTestSuite) TestDecodeHookOption() {
	type Session struct {
		Start time.Time `bson:"start"`
	}
	type SessionFilter struct {
		Session
		Start gequery.Field[time.Time]
	}

	schema := gequery.MustBind[SessionFilter](gequery.WithDecoder(
		gequery.NewDecoder(gequery.WithDecodeHook(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)),
	))

	var sess Session
	err := schema.Decode(M{"start": "2024-05-01T10:00:00Z"}, &sess)
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), sess.Start)
}

func (s *GequeryTestSuite) TestNewField() {
	score := gequery.NewField[float64]("score")
	s.Equal(gequery.KindFloat, score.Kind())

	q := s.query(score.Gt(9.5))
	s.Equal(gequery.Query{"score": M{"$gt": 9.5}}, q)
}

func (s *GequeryTestSuite) TestNewHandle() {
	h := gequery.NewHandle("level", gequery.KindInt)

	q := s.query(h.Eq(3))
	s.Equal(gequery.Query{"level": 3}, q)
}

func TestGequeryTestSuite(t *testing.T) {
	suite.Run(t, new(GequeryTestSuite))
}
