// Package tt supports table-driven tests of pure functions with little
// boilerplate.
//
// A test table lists argument tuples together with the return values they
// are expected to produce:
//
//	tt.Test(t, tt.Fn("nextBoundary", nextBoundary), tt.Table{
//		tt.Args("ab", 0).Rets(1),
//		tt.Args("ab", 2).Rets(2),
//	})
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Table is a list of test cases.
type Table []*Case

// Case is one test case, created by Args and augmented by the chainable
// setters.
type Case struct {
	args []any
	rets []any
	desc string
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets sets the expected return values and returns the receiver. An expected
// value may implement Matcher; otherwise it is compared with cmp.Diff.
func (c *Case) Rets(rets ...any) *Case {
	c.rets = rets
	return c
}

// Desc attaches a description that is shown when the case fails.
func (c *Case) Desc(s string) *Case {
	c.desc = s
	return c
}

// FnToTest describes a function under test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	opts    []cmp.Option
}

// Fn makes a new FnToTest from a name and a function value.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the format used for printing arguments in failure messages.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// CmpOpts sets additional options passed to cmp.Diff when comparing return
// values. Errors are always compared with errors.Is.
func (fn *FnToTest) CmpOpts(opts ...cmp.Option) *FnToTest {
	fn.opts = opts
	return fn
}

// T is the subset of testing.T used by Test.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test runs all cases of the table against fn.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	opts := append([]cmp.Option{cmpopts.EquateErrors()}, fn.opts...)
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if diff := diffRets(test.rets, rets, opts); diff != "" {
			var args string
			if fn.argsFmt == "" {
				args = sprintArgs(test.args)
			} else {
				args = fmt.Sprintf(fn.argsFmt, test.args...)
			}
			if test.desc != "" {
				args += " [" + test.desc + "]"
			}
			t.Errorf("%s(%s) returns (-want +got):\n%s", fn.name, args, diff)
		}
	}
}

// Matcher is implemented by expected values that decide themselves whether
// an actual value matches.
type Matcher interface {
	Match(actual any) bool
}

// Any matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(any) bool { return true }

func diffRets(want, got []any, opts []cmp.Option) string {
	if len(want) != len(got) {
		return fmt.Sprintf("want %d return values, got %d", len(want), len(got))
	}
	var sb strings.Builder
	for i := range want {
		if m, ok := want[i].(Matcher); ok {
			if !m.Match(got[i]) {
				fmt.Fprintf(&sb, "return value %d: %v does not match\n", i, got[i])
			}
			continue
		}
		if d := cmp.Diff(want[i], got[i], opts...); d != "" {
			if len(want) > 1 {
				fmt.Fprintf(&sb, "return value %d:\n", i)
			}
			sb.WriteString(d)
		}
	}
	return sb.String()
}

func sprintArgs(args []any) string {
	strs := make([]string, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			strs[i] = fmt.Sprintf("%q", s)
		} else {
			strs[i] = fmt.Sprint(arg)
		}
	}
	return strings.Join(strs, ", ")
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// A bare nil has no type; use the zero value of the parameter.
			argValues[i] = reflect.Zero(fnType.In(i))
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	retValues := fnValue.Call(argValues)
	rets := make([]any, len(retValues))
	for i, v := range retValues {
		rets[i] = v.Interface()
	}
	return rets
}
