// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package script runs line-oriented operation scripts against an ordered map.
//
// One operation per line, fields separated by whitespace. A line whose first
// field starts with '#' is a comment, and a '#' standing alone as a field
// comments out the rest of the line. Anywhere else '#' is an ordinary
// character, so "set color #ff0000" stores "#ff0000".
//
//
//	set <key> <value...>   insert or update
//	get <key>              print the value
//	del <key>              remove
//	has <key>              print true or false
//	index <key>            print the key's position, -1 if absent
//	len | cap              print the entry count or the capacity
//	dump                   print every entry in order
//	reserve <n>            reserve room for n more entries
//	shrink                 release spare capacity
//	clear                  remove every entry
package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Op is one parsed script line.
type Op struct {
	Line int
	Name string
	Args []string
}

func (o Op) String() string {
	return strings.TrimSpace(o.Name + " " + strings.Join(o.Args, " "))
}

// arity is the number of arguments each operation takes. A negative value
// -n means at least n.
var arity = map[string]int{
	"set":     -2,
	"get":     1,
	"del":     1,
	"has":     1,
	"index":   1,
	"len":     0,
	"cap":     0,
	"dump":    0,
	"reserve": 1,
	"shrink":  0,
	"clear":   0,
}

// Parse reads a script. Errors carry the offending line number.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := stripComment(strings.Fields(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		op := Op{Line: line, Name: strings.ToLower(fields[0]), Args: fields[1:]}
		want, ok := arity[op.Name]
		if !ok {
			return nil, errors.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		switch {
		case want < 0 && len(op.Args) < -want:
			return nil, errors.Errorf("line %d: %s needs at least %d arguments, got %d", line, op.Name, -want, len(op.Args))
		case want >= 0 && len(op.Args) != want:
			return nil, errors.Errorf("line %d: %s takes %d arguments, got %d", line, op.Name, want, len(op.Args))
		}
		if op.Name == "reserve" {
			if n, err := strconv.Atoi(op.Args[0]); err != nil || n < 0 {
				return nil, errors.Errorf("line %d: reserve needs a non-negative count, got %q", line, op.Args[0])
			}
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return ops, nil
}

func stripComment(fields []string) []string {
	if len(fields) > 0 && strings.HasPrefix(fields[0], "#") {
		return nil
	}
	for i, f := range fields {
		if f == "#" {
			return fields[:i]
		}
	}
	return fields
}
