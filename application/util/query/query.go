// Package query parses the query component of a request target.
//
// Entries are separated by '+' rather than '&'. Routes registered against this
// server rely on that, so it must not be changed to the usual
// application/x-www-form-urlencoded rules.
package query

import "strings"

const (
	entrySeparator = "+"
	pairSeparator  = "="
)

type KeyValue struct {
	Key   string
	Value string
}

// Query holds key-value pairs in the order they appeared.
// Duplicated keys are kept as they are.
type Query struct {
	Pairs []KeyValue
}

// Parse parses raw query string. A single leading and trailing '?' is tolerated.
// Malformed entries are dropped; Parse never fails as a whole.
func Parse(raw string) Query {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "?")
	raw = strings.TrimSuffix(raw, "?")

	var q Query
	for _, entry := range strings.Split(raw, entrySeparator) {
		if kv, ok := ParseKeyValue(entry); ok {
			q.Pairs = append(q.Pairs, kv)
		}
	}

	return q
}

// ParseKeyValue parses "key=value" or "key".
// An entry with more than one '=' is rejected.
func ParseKeyValue(entry string) (KeyValue, bool) {
	parts := strings.Split(entry, pairSeparator)
	if len(parts) > 2 {
		return KeyValue{}, false
	}

	kv := KeyValue{Key: parts[0]}
	if len(parts) == 2 {
		kv.Value = parts[1]
	}

	return kv, true
}

// Get returns the value of the first pair with given key.
func (q Query) Get(key string) (value string, ok bool) {
	for _, kv := range q.Pairs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Values returns every value of given key, in order.
func (q Query) Values(key string) []string {
	var values []string
	for _, kv := range q.Pairs {
		if kv.Key == key {
			values = append(values, kv.Value)
		}
	}
	return values
}

func (q Query) Len() int { return len(q.Pairs) }

func (q Query) String() string {
	b := new(strings.Builder)
	for idx, kv := range q.Pairs {
		if idx > 0 {
			b.WriteString(entrySeparator)
		}
		b.WriteString(kv.Key)
		if kv.Value != "" {
			b.WriteString(pairSeparator)
			b.WriteString(kv.Value)
		}
	}
	return b.String()
}
