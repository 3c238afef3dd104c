package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-arcade/ordered/pkg/log"
	"github.com/go-arcade/ordered/pkg/orderedmap"
	"github.com/pkg/errors"
)

// Runner applies operations to a map and writes their results to Out.
type Runner struct {
	Map *orderedmap.Map[string, string]
	Out io.Writer
	Log log.ILogger
	// Verify checks the map's internal consistency after every operation.
	Verify bool
}

// Run applies ops in order and stops at the first failure.
func (r *Runner) Run(ops []Op) error {
	for _, op := range ops {
		if err := r.apply(op); err != nil {
			return errors.Wrapf(err, "line %d: %s", op.Line, op)
		}
		if r.Verify {
			if err := r.Map.Verify(); err != nil {
				return errors.Wrapf(err, "line %d: %s", op.Line, op)
			}
		}
		if r.Log != nil {
			r.Log.Debugw("applied", "line", op.Line, "op", op.Name, "len", r.Map.Len(), "cap", r.Map.Cap())
		}
	}
	return nil
}

func (r *Runner) apply(op Op) error {
	m := r.Map
	switch op.Name {
	case "set":
		key, value := op.Args[0], strings.Join(op.Args[1:], " ")
		if prev, replaced := m.Insert(key, value); replaced {
			return r.printf("%s: %q -> %q\n", key, prev, value)
		}
		return r.printf("%s: new\n", key)
	case "get":
		if v, ok := m.Get(op.Args[0]); ok {
			return r.printf("%s\n", v)
		}
		return r.printf("<absent>\n")
	case "del":
		if v, ok := m.Remove(op.Args[0]); ok {
			return r.printf("removed %s=%s\n", op.Args[0], v)
		}
		return r.printf("<absent>\n")
	case "has":
		return r.printf("%t\n", m.Contains(op.Args[0]))
	case "index":
		return r.printf("%d\n", m.IndexOf(op.Args[0]))
	case "len":
		return r.printf("%d\n", m.Len())
	case "cap":
		return r.printf("%d\n", m.Cap())
	case "dump":
		for k, v := range m.All() {
			if err := r.printf("%s=%s\n", k, v); err != nil {
				return err
			}
		}
		return nil
	case "reserve":
		n, err := strconv.Atoi(op.Args[0])
		if err != nil {
			return errors.Wrap(err, "reserve")
		}
		m.Reserve(n)
		return nil
	case "shrink":
		m.ShrinkToFit()
		return nil
	case "clear":
		m.Clear()
		return nil
	default:
		return errors.Errorf("unknown operation %q", op.Name)
	}
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.Out, format, args...)
	return err
}
