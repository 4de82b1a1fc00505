package builder

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// Query is the terminal compiled filter document. It is structurally a plain
// mapping: pass it anywhere a map[string]any filter is accepted, or through
// [Query.BSON] to the official driver. Once constructed its content is a
// static snapshot.
type Query domain.M

// NewQuery compiles the given parts into an independent Query. Parts may be
// [Cond] values or booleans (a no-op, as in [Cond.And]); anything else fails
// with [domain.ErrCondArg]. Conds merge in argument order under the fold
// rules of [Cond.And], and the first error deferred into any part aborts the
// construction. The result lives in fresh storage: successive constructions
// share nothing, and later use of a part never changes an existing Query.
func NewQuery(parts ...any) (Query, error) {
	merged := And(parts...)
	if merged.err != nil {
		return nil, merged.err
	}
	q := make(Query, len(merged.m))
	for name, e := range merged.m {
		q[name] = e.val
	}
	return q, nil
}

// Or returns a new Query {"$or": [q, other]}. The operands are embedded as
// complete snapshots, never merged key by key, and stay untouched.
func (q Query) Or(other Query) Query {
	return Query{"$or": []Query{q, other}}
}

// BSON returns the query as a [bson.M] for the official MongoDB driver.
func (q Query) BSON() bson.M {
	return bson.M(q)
}
