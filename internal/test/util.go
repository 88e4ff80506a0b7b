package test

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/SyMind/css-module-lexer/internal/diagnostic"
)

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("%s != %s", a, b)
	}
}

func AssertEqualWithDiff(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		stringA := fmt.Sprintf("%v", a)
		stringB := fmt.Sprintf("%v", b)
		if strings.Contains(stringA, "\n") {
			color := runtime.GOOS != "windows"
			t.Fatal(diff(stringB, stringA, color))
		} else {
			t.Fatalf("%s != %s", a, b)
		}
	}
}

func SourceForTest(contents string) diagnostic.Source {
	return diagnostic.Source{
		PrettyPath: "<stdin>",
		Contents:   contents,
	}
}
