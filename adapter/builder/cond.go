package builder

import (
	"maps"
	"regexp"

	"github.com/vinicius-lino-figueiredo/gequery/domain"
)

// entry is one field's fragment inside a [Cond]. cmp marks values written by
// comparison operators, which fold with each other when merged on the same
// name; folded marks values that already are such a fold list.
type entry struct {
	val    any
	cmp    bool
	folded bool
}

// Cond is a self-contained filter fragment: one field's comparison or the
// conjunction of several. Conds are plain values; combining them never
// mutates an operand, so intermediate results can be reused or discarded
// freely. A Cond built from an invalid operation carries the error until
// [Cond.Err] or [NewQuery] surfaces it.
type Cond struct {
	m   map[string]entry
	err error
}

// And merges the given parts into a copy of c and returns it. Parts may be
// Cond values or booleans: conjunction with a bool preserves content, so
// expressions mixing literal booleans stay valid. Same-name collisions fold
// into an ordered list when both sides come from comparison operators;
// otherwise the last write wins.
func (c Cond) And(parts ...any) Cond {
	res := Cond{m: make(map[string]entry, len(c.m)+len(parts)), err: c.err}
	maps.Copy(res.m, c.m)
	for _, part := range parts {
		switch t := part.(type) {
		case Cond:
			if res.err == nil {
				res.err = t.err
			}
			res.merge(t.m)
		case bool:
		default:
			if res.err == nil {
				res.err = domain.ErrCondArg{Got: part}
			}
		}
	}
	return res
}

// And is the package-level symmetric form of [Cond.And], so the boolean may
// also stand on the left: And(true, c) is content-equivalent to c.
func And(parts ...any) Cond {
	return Cond{}.And(parts...)
}

func (c *Cond) merge(src map[string]entry) {
	for name, e := range src {
		if prev, ok := c.m[name]; ok && prev.cmp && e.cmp {
			c.m[name] = fold(prev, e)
			continue
		}
		c.m[name] = e
	}
}

// fold starts an ordered list as [prev, next] or appends to an existing one.
// Fresh slices keep the operand Conds untouched.
func fold(prev, next entry) entry {
	var list []any
	if prev.folded {
		list = append(list, prev.val.([]any)...)
	} else {
		list = append(list, prev.val)
	}
	if next.folded {
		list = append(list, next.val.([]any)...)
	} else {
		list = append(list, next.val)
	}
	return entry{val: list, cmp: true, folded: true}
}

// Err returns the first error deferred into the Cond, if any.
func (c Cond) Err() error { return c.err }

// Document compiles the fragment into a fresh [domain.M].
func (c Cond) Document() domain.M {
	doc := make(domain.M, len(c.m))
	for name, e := range c.m {
		doc[name] = e.val
	}
	return doc
}

// Exists produces {name: {"$exists": true}} for a [domain.Field] or a raw
// field-name string; any other field argument defers [domain.ErrFieldArg].
// The fragment is built directly, sharing no state with comparison chains,
// so calling it can never perturb an expression under construction.
func Exists(field any) Cond {
	name, err := fieldName(field)
	if err != nil {
		return Cond{err: err}
	}
	return Cond{m: map[string]entry{name: {val: domain.M{"$exists": true}}}}
}

// RegexQuery produces {name: {"$regex": source}} from a compiled pattern,
// built directly like [Exists]. A nil pattern defers [domain.ErrNilPattern].
func RegexQuery(field any, pattern *regexp.Regexp) Cond {
	name, err := fieldName(field)
	if err != nil {
		return Cond{err: err}
	}
	if pattern == nil {
		return Cond{err: domain.ErrNilPattern}
	}
	return Cond{m: map[string]entry{name: {val: domain.M{"$regex": pattern.String()}}}}
}

func fieldName(field any) (string, error) {
	switch t := field.(type) {
	case domain.Field:
		if t.Name() == "" {
			return "", domain.ErrUnboundField
		}
		return t.Name(), nil
	case string:
		return t, nil
	default:
		return "", domain.ErrFieldArg{Got: field}
	}
}
