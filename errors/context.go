package errors

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// contextError carries the key/value pairs added with ErrorBuilder.WithContext.
// Values are kept whole so the verbose table can show multi-word commands.
type contextError struct {
	cause error
	keys  []string
	pairs map[string]string
}

func withContext(err error, context map[string]interface{}) error {
	keys := make([]string, 0, len(context))
	pairs := make(map[string]string, len(context))
	for k, v := range context {
		keys = append(keys, k)
		pairs[k] = fmt.Sprint(v)
	}
	// Sorted for stable output.
	sort.Strings(keys)
	return &contextError{cause: err, keys: keys, pairs: pairs}
}

func (e *contextError) Error() string { return e.cause.Error() }
func (e *contextError) Cause() error { return e.cause }
func (e *contextError) Unwrap() error { return e.cause }

// Format keeps cockroach's %+v chain output.
func (e *contextError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeDetails exposes the context to Sentry reports as "key=value" strings.
func (e *contextError) SafeDetails() []string {
	details := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		details = append(details, k+"="+e.pairs[k])
	}
	return details
}

// contextRows collects the context of every builder error in the chain,
// outermost first.
func contextRows(err error) [][]string {
	var rows [][]string
	for ; err != nil; err = errors.UnwrapOnce(err) {
		c, ok := err.(*contextError)
		if !ok {
			continue
		}
		for _, k := range c.keys {
			rows = append(rows, []string{k, c.pairs[k]})
		}
	}
	return rows
}
