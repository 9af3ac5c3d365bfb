package shell_test

import (
	"testing"

	"github.com/joshyorko/cratebom/hamlet"
	"github.com/joshyorko/cratebom/shell"
)

func TestCanSplitCommandlines(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	parts, err := shell.Split(`cargo +nightly build`)
	must_be.Nil(err)
	must_be.Equal([]string{"cargo", "+nightly", "build"}, parts)

	parts, err = shell.Split(`cross build --target "x86_64-unknown-linux-musl"`)
	must_be.Nil(err)
	must_be.Equal(4, len(parts))
	must_be.Equal("x86_64-unknown-linux-musl", parts[3])

	_, err = shell.Split(`broken "quote`)
	wont_be.Nil(err)
}

func TestCanStreamTaskOutputLineByLine(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	seen := []string{}
	task := shell.New(nil, ".", "sh", "-c", "echo first; echo second")
	code, err := task.Stream(func(line string) error {
		seen = append(seen, line)
		return nil
	})
	must_be.Nil(err)
	must_be.Equal(0, code)
	must_be.Equal([]string{"first", "second"}, seen)
}

func TestStreamPropagatesChildExitCode(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	task := shell.New(nil, ".", "sh", "-c", "echo partial; exit 2")
	code, err := task.Stream(func(string) error { return nil })
	wont_be.Nil(err)
	must_be.Equal(2, code)
}
