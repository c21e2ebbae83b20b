package main

import (
	"context"
	"errors"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdTestCase struct {
	name  string
	args  []string
	files map[string]string
	input string

	// inputErr, if set, is returned by stdin after all of input is read
	inputErr error

	code   int
	output string
	errs   []string
}

func (ct cmdTestCase) run(t *testing.T) {
	dir := t.TempDir()
	for name, content := range ct.files {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	args := make([]string, len(ct.args))
	for i, arg := range ct.args {
		args[i] = strings.ReplaceAll(arg, "$DIR", dir)
	}

	var stdin io.Reader = strings.NewReader(ct.input)
	if ct.inputErr != nil {
		stdin = io.MultiReader(stdin, errReader{ct.inputErr})
	}

	var stdout, stderr strings.Builder
	cmd := command{
		name:   "gobf",
		args:   args,
		stdin:  stdin,
		stdout: &stdout,
		stderr: &stderr,
	}
	code := cmd.run(context.Background())

	errs := strings.ReplaceAll(stderr.String(), dir, "$DIR")
	assert.Equal(t, ct.code, code, "expected exit code\nstderr:\n%v", errs)
	assert.Equal(t, ct.output, stdout.String(), "expected program output")
	for _, want := range ct.errs {
		assert.Contains(t, errs, want, "expected error output")
	}
}

func TestCommand(t *testing.T) {
	const hello = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

	for _, ct := range []cmdTestCase{
		{
			name: "no source",
			code: 1,
			errs: []string{
				"ERROR: no path to the source file provided\n",
				"Usage: gobf [flags] <source file path>",
			},
		},
		{
			name: "help",
			args: []string{"-h"},
			errs: []string{"Usage: gobf [flags] <source file path>", "-timeout"},
		},
		{
			name: "bad flag",
			args: []string{"-nope", "$DIR/prog.b"},
			code: 1,
			errs: []string{"flag provided but not defined: -nope"},
		},
		{
			name: "missing file",
			args: []string{"$DIR/nope.b"},
			code: 1,
			errs: []string{`ERROR: file error: the path "$DIR/nope.b" does not exist`},
		},
		{
			name: "directory",
			args: []string{"$DIR"},
			code: 1,
			errs: []string{`ERROR: file error: unable to read "$DIR"`},
		},
		{
			name:  "binary file",
			files: map[string]string{"prog.b": "+\xff\xfe."},
			args:  []string{"$DIR/prog.b"},
			code:  1,
			errs:  []string{`ERROR: file error: unable to read "$DIR/prog.b": not a text file`},
		},
		{
			name:  "unclosed loop",
			files: map[string]string{"prog.b": "+\n++[-\n"},
			args:  []string{"$DIR/prog.b"},
			code:  1,
			errs:  []string{"ERROR: compile error: opened a nonexistent loop on line $DIR/prog.b:2:3\n"},
		},
		{
			name:  "unopened loop",
			files: map[string]string{"prog.b": "+-]"},
			args:  []string{"$DIR/prog.b"},
			code:  1,
			errs:  []string{"ERROR: compile error: closed a nonexistent loop on line $DIR/prog.b:1:3\n"},
		},
		{
			name:   "hello",
			files:  map[string]string{"hello.b": hello},
			args:   []string{"$DIR/hello.b"},
			output: "Hello World!\n",
		},
		{
			name:   "cat",
			files:  map[string]string{"cat.b": ",[.,]"},
			args:   []string{"$DIR/cat.b"},
			input:  "meow\n",
			output: "meow\n",
		},
		{
			name:   "eof max",
			files:  map[string]string{"prog.b": ",+[-.]"},
			args:   []string{"-eof", "max", "$DIR/prog.b"},
			output: "",
		},
		{
			name:  "bad eof mode",
			files: map[string]string{"prog.b": ","},
			args:  []string{"-eof", "sometimes", "$DIR/prog.b"},
			code:  1,
			errs:  []string{`invalid value "sometimes" for flag -eof`},
		},
		{
			name:   "utf8 output",
			files:  map[string]string{"prog.b": strings.Repeat("-", 256-0xe9) + "."},
			args:   []string{"-utf8", "$DIR/prog.b"},
			output: "é",
		},
		{
			name:   "debug",
			files:  map[string]string{"prog.b": "+++>>-<"},
			args:   []string{"-debug", "$DIR/prog.b"},
			output: "",
			errs: []string{
				"DEBUG: compiled $DIR/prog.b: 7 instructions, optimized to 4\n",
				"DEBUG: # VM Dump\n",
				"DEBUG:   pointer: 1\n",
				"DEBUG: # Program: 4 instructions\n",
				"DEBUG:   +3 >2 -1 <1\n",
			},
		},
		{
			name:   "trace",
			files:  map[string]string{"prog.b": "+."},
			args:   []string{"-trace", "$DIR/prog.b"},
			output: "\x01",
			errs: []string{
				"DEBUG: > @0:0 +1",
				"DEBUG: < out <SOH> ^A",
			},
		},
		{
			name:   "debug output",
			files:  map[string]string{"prog.b": "++++++++[>++++++++<-]>+.[-]++++++++++.>++++++++[>++++++++<-]>++."},
			args:   []string{"-debug", "$DIR/prog.b"},
			output: "A\nB",
			errs: []string{
				"OUT: A\n",
				"OUT: B\n",
				"DEBUG: # VM Dump\n",
			},
		},
		{
			name:     "input failure",
			files:    map[string]string{"prog.b": "+++.,."},
			args:     []string{"$DIR/prog.b"},
			inputErr: errors.New("tty gone"),
			code:     1,
			output:   "\x03",
			errs:     []string{"ERROR: runtime error: error while reading data: tty gone\n"},
		},
		{
			name:     "input failure after some input",
			files:    map[string]string{"prog.b": ",.,."},
			args:     []string{"$DIR/prog.b"},
			input:    "a",
			inputErr: errors.New("tty gone"),
			code:     1,
			output:   "a",
			errs:     []string{"ERROR: runtime error: error while reading data: tty gone\n"},
		},
		{
			name:  "time limit",
			files: map[string]string{"prog.b": "+[]"},
			args:  []string{"-timeout", "20ms", "$DIR/prog.b"},
			code:  1,
			errs:  []string{"ERROR: time limit exceeded\n"},
		},
	} {
		t.Run(ct.name, ct.run)
	}
}

func TestInterpret(t *testing.T) {
	var out strings.Builder
	err := Interpret(context.Background(), []byte(",[>+<-]>."),
		WithInput(strings.NewReader("\x05")),
		WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, "\x05", out.String())

	err = Interpret(context.Background(), []byte("[[]"))
	assert.EqualError(t, err, "opened a nonexistent loop on line 1:1")
}
