package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	recvType  = flag.String("type", "vmTestCase", "test case builder type to scan methods of")
	prefixes  = flag.String("prefix", "expect", "comma separated method name prefixes to wrap")
	infix     = flag.String("infix", "VM", "string inserted after the prefix in each wrapper name")
	formatter = flag.String("fmt", "gofmt", "command used to format generated code")
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

type source struct {
	in  namedReader
	out io.WriteCloser
}

func openSource(args []string) (src source, err error) {
	src.in, src.out = os.Stdin, os.Stdout
	if len(args) > 0 {
		if src.in, err = os.Open(args[0]); err != nil {
			return src, fmt.Errorf("failed to open %v: %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if src.out, err = os.Create(args[1]); err != nil {
			return src, fmt.Errorf("failed to create %v: %w", args[1], err)
		}
	}
	return src, nil
}

func main() {
	flag.Parse()

	src, err := openSource(flag.Args())
	if err != nil {
		log.Fatalln(err)
	}
	methodPattern := buildPattern(*recvType, strings.Split(*prefixes, ","))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	formatIn, formatOut := io.Pipe()

	eg.Go(func() error {
		defer src.out.Close()
		cmd := exec.CommandContext(ctx, *formatter)
		cmd.Stdin = formatIn
		cmd.Stdout = src.out
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			formatIn.CloseWithError(err)
			return fmt.Errorf("%v run failed: %w", *formatter, err)
		}
		return nil
	})

	eg.Go(func() error {
		defer src.in.Close()
		err := generate(ctx, methodPattern, src.in, formatOut)
		formatOut.CloseWithError(err)
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func buildPattern(recv string, prefixes []string) *regexp.Regexp {
	for i, prefix := range prefixes {
		prefixes[i] = regexp.QuoteMeta(strings.TrimSpace(prefix))
	}
	return regexp.MustCompile(fmt.Sprintf(
		`^func \(\w+ %[1]s\) (%[2]s)(\w+)\((.+?)\) %[1]s \{`,
		regexp.QuoteMeta(recv), strings.Join(prefixes, "|")))
}

func generate(ctx context.Context, pattern *regexp.Regexp, in namedReader, out io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %v\n\n", in.Name())
	if args := flag.Args(); len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_vm_expects.go -- %v\n", strings.Join(args, " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := pattern.FindSubmatch(sc.Bytes()); match != nil {
			writeWrapper(&buf, string(match[1]), string(match[2]), string(match[3]))
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	_, err := buf.WriteTo(out)
	return err
}

// writeWrapper writes a function that returns a deferred call of a builder
// method, e.g. expectVMCell(value) for vmt.expectCell(value).
func writeWrapper(buf *bytes.Buffer, prefix, what, params string) {
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		if len(fields) < 2 {
			continue
		}
		arg := fields[0]
		if strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}

	fmt.Fprintf(buf, "\nfunc %v%v%v(%v) func(%v) %[5]v {\n", prefix, *infix, what, params, *recvType)
	fmt.Fprintf(buf, "\treturn func(vmt %v) %[1]v {\n", *recvType)
	fmt.Fprintf(buf, "\t\treturn vmt.%v%v(%v)\n", prefix, what, strings.Join(args, ", "))
	buf.WriteString("\t}\n}\n")
}
