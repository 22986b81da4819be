package oai

import (
	"net/url"
	"strings"

	"github.com/casualjim/oai/param"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// query builds a URL query string whose parameters appear in the order they
// were added, so request URLs stay deterministic.
type query struct {
	pairs *orderedmap.OrderedMap[string, string]
}

func newQuery() *query {
	return &query{pairs: orderedmap.New[string, string]()}
}

func (q *query) add(key, value string) *query {
	q.pairs.Set(key, value)
	return q
}

// addOpt adds key only when v is present, rendered with fmt.Sprint.
func addOpt[T any](q *query, key string, v param.Opt[T]) *query {
	if value, ok := param.Text(v); ok {
		q.add(key, value)
	}
	return q
}

// String renders the query with a leading "?", or "" when no parameters were
// added.
func (q *query) String() string {
	if q.pairs.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('?')
	for pair := q.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if sb.Len() > 1 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(pair.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair.Value))
	}
	return sb.String()
}

// ListQuery holds the pagination controls shared by the list endpoints
// (assistants, threads, runs, vector stores). The zero value lists with the
// service defaults.
type ListQuery struct {
	limit  param.Opt[int]
	order  param.Opt[string]
	after  param.Opt[string]
	before param.Opt[string]
}

// WithLimit caps the number of objects returned.
func (q ListQuery) WithLimit(n int) ListQuery {
	q.limit = param.Some(n)
	return q
}

// WithOrder sorts by creation time, "asc" or "desc".
func (q ListQuery) WithOrder(order string) ListQuery {
	q.order = param.Some(order)
	return q
}

// WithAfter returns objects after the given cursor ID.
func (q ListQuery) WithAfter(after string) ListQuery {
	q.after = param.Some(after)
	return q
}

// WithBefore returns objects before the given cursor ID.
func (q ListQuery) WithBefore(before string) ListQuery {
	q.before = param.Some(before)
	return q
}

func (q ListQuery) encode() string {
	qs := newQuery()
	addOpt(qs, "limit", q.limit)
	addOpt(qs, "order", q.order)
	addOpt(qs, "after", q.after)
	addOpt(qs, "before", q.before)
	return qs.String()
}
