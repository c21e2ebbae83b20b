package mem_test

import (
	"log"
	"os"
	"testing"

	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/mem"
	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Wrap(t *testing.T) {
	for _, tc := range []struct {
		addr int
		want uint
	}{
		{0, 0},
		{1, 1},
		{mem.TapeSize - 1, mem.TapeSize - 1},
		{mem.TapeSize, 0},
		{mem.TapeSize + 7, 7},
		{-1, mem.TapeSize - 1},
		{-mem.TapeSize, 0},
		{-mem.TapeSize - 1, mem.TapeSize - 1},
		{5*mem.TapeSize + 3, 3},
		{-5*mem.TapeSize - 3, mem.TapeSize - 3},
	} {
		assert.Equal(t, tc.want, mem.Wrap(tc.addr), "expected Wrap(%v)", tc.addr)
	}
}

func Test_Tape(t *testing.T) {
	for _, tc := range []tapeTestCase{
		tapeTest("basic",
			"init", func(t *testing.T, tape *mem.Tape) {
				require.Equal(t, uint(0), tape.Pointer(), "expected pointer @0")
				require.Equal(t, byte(0), tape.Load(), "expected 0 @0")
				_, _, used := tape.Used()
				require.False(t, used, "expected an unused tape")
			},

			"3 -> 0", func(t *testing.T, tape *mem.Tape) {
				tape.Add(3)
				require.Equal(t, byte(3), tape.Load(), "expected 3 @0")
				expectCellsAt(t, tape, 0, 3, 0, 0)
			},

			"move and stor", func(t *testing.T, tape *mem.Tape) {
				tape.Move(2)
				tape.Stor(42)
				require.Equal(t, uint(2), tape.Pointer(), "expected pointer @2")
				expectCellsAt(t, tape, 0, 3, 0, 42, 0)
				lo, hi, used := tape.Used()
				require.True(t, used, "expected a used tape")
				require.Equal(t, uint(0), lo, "expected low mark")
				require.Equal(t, uint(2), hi, "expected high mark")
			},

			"seek and clear", func(t *testing.T, tape *mem.Tape) {
				tape.Seek(-mem.TapeSize)
				tape.Stor(0)
				tape.StorAt(2, 0)
				require.Equal(t, uint(0), tape.Pointer(), "expected pointer @0")
				expectCellsAt(t, tape, 0, 0, 0, 0, 0)
				_, _, used := tape.Used()
				require.False(t, used, "expected an unused tape")
			},
		),

		tapeTest("pointer wraparound",
			"back from 0", func(t *testing.T, tape *mem.Tape) {
				tape.Move(-1)
				require.Equal(t, uint(mem.TapeSize-1), tape.Pointer(), "expected pointer on the last cell")
			},

			"forward past the end", func(t *testing.T, tape *mem.Tape) {
				tape.Move(1)
				require.Equal(t, uint(0), tape.Pointer(), "expected pointer back @0")
				tape.Move(mem.TapeSize + 5)
				require.Equal(t, uint(5), tape.Pointer(), "expected pointer @5")
			},

			"large backward delta", func(t *testing.T, tape *mem.Tape) {
				tape.Move(-3*mem.TapeSize - 6)
				require.Equal(t, uint(mem.TapeSize-1), tape.Pointer(), "expected pointer on the last cell")
			},

			"full circle", func(t *testing.T, tape *mem.Tape) {
				for _, start := range []int{0, 1, 1234, mem.TapeSize - 1} {
					tape.Seek(start)
					tape.Move(mem.TapeSize)
					require.Equal(t, uint(start), tape.Pointer(), "expected +TapeSize to be identity from @%v", start)
					tape.Move(-mem.TapeSize)
					require.Equal(t, uint(start), tape.Pointer(), "expected -TapeSize to be identity from @%v", start)
				}
			},
		),

		tapeTest("cell wraparound",
			"underflow", func(t *testing.T, tape *mem.Tape) {
				tape.Add(-1)
				require.Equal(t, byte(255), tape.Load(), "expected 0-1 to wrap to 255")
			},

			"overflow", func(t *testing.T, tape *mem.Tape) {
				tape.Add(2)
				require.Equal(t, byte(1), tape.Load(), "expected 255+2 to wrap to 1")
			},

			"full byte", func(t *testing.T, tape *mem.Tape) {
				tape.Stor(77)
				tape.Add(256)
				require.Equal(t, byte(77), tape.Load(), "expected +256 to be identity")
				tape.Add(-256 * 9)
				require.Equal(t, byte(77), tape.Load(), "expected -2304 to be identity")
				tape.Add(1000)
				require.Equal(t, byte((77+1000)%256), tape.Load(), "expected large delta to wrap")
			},
		),

		tapeTest("stor across the end",
			"stor", func(t *testing.T, tape *mem.Tape) {
				tape.StorAt(-2, 1, 2, 3, 4)
				require.Equal(t, byte(1), tape.LoadAt(mem.TapeSize-2), "expected 1 @-2")
				require.Equal(t, byte(2), tape.LoadAt(-1), "expected 2 @-1")
				expectCellsAt(t, tape, 0, 3, 4, 0)
			},

			"load across the end", func(t *testing.T, tape *mem.Tape) {
				expectCellsAt(t, tape, mem.TapeSize-3, 0, 1, 2, 3, 4, 0)
				lo, hi, used := tape.Used()
				require.True(t, used, "expected a used tape")
				require.Equal(t, uint(0), lo, "expected low mark")
				require.Equal(t, uint(mem.TapeSize-1), hi, "expected high mark")
			},
		),
	} {
		t.Run(tc.name, func(t *testing.T) {
			tcLogOut := &logio.Writer{Logf: t.Logf}
			log.SetOutput(tcLogOut)
			defer log.SetOutput(os.Stderr)

			var tape mem.Tape
			defer func() {
				if t.Failed() {
					t.Logf("pointer: %v", tape.Pointer())
					if lo, hi, used := tape.Used(); used {
						t.Logf("used: [%v, %v]", lo, hi)
					}
				}
			}()

			for _, step := range tc.steps {
				if !t.Run(step.name, func(t *testing.T) {
					stepLogOut := &logio.Writer{Logf: t.Logf}
					log.SetOutput(stepLogOut)
					defer log.SetOutput(tcLogOut)

					isolateTest(t, step.bind(&tape))
				}) {
					break
				}
			}
		})
	}
}

func isolateTest(t *testing.T, f func(t *testing.T)) {
	if err := panicerr.Recover(t.Name(), func() error {
		f(t)
		return nil
	}); err != nil {
		t.Logf("%+v", err)
		t.Fail()
	}
}

func expectCellsAt(t *testing.T, tape *mem.Tape, addr int, values ...byte) {
	buf := make([]byte, len(values))
	tape.LoadInto(addr, buf)
	require.Equal(t, values, buf, "expected values @%v", addr)
}

func tapeTest(name string, args ...interface{}) (tc tapeTestCase) {
	tc.name = name
	for i := 0; i < len(args); i++ {
		var step tapeTestStep

		step.name = args[i].(string)

		if i++; i >= len(args) {
			panic("tapeTest: missing function argument after name")
		}
		step.f = args[i].(func(t *testing.T, tape *mem.Tape))

		tc.steps = append(tc.steps, step)
	}
	return tc
}

type tapeTestCase struct {
	name  string
	steps []tapeTestStep
}

type tapeTestStep struct {
	name string
	f    func(t *testing.T, tape *mem.Tape)

	tape *mem.Tape
}

func (step tapeTestStep) bind(tape *mem.Tape) func(t *testing.T) {
	step.tape = tape
	return step.boundTest
}

func (step tapeTestStep) boundTest(t *testing.T) {
	step.f(t, step.tape)
}
