package vectorgen

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Invocation is one parsed line from a batch script: a directory to
// write vectors into and the parameters to generate them with.
type Invocation struct {
	Dir    string
	Params Params
}

// ParseScript tokenizes each non-blank, non-comment line of a batch
// script with shell-style quoting rules (via shlex) into an Invocation,
// letting one process regenerate several vector sets with different
// seeds or sample counts for a hardware regression sweep. Recognized
// flags per line: -dir, -seed, -samples.
func ParseScript(path string) ([]Invocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var invocations []Invocation
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("vectorgen: script line %d: %w", lineNo, err)
		}
		inv, err := parseInvocation(fields)
		if err != nil {
			return nil, fmt.Errorf("vectorgen: script line %d: %w", lineNo, err)
		}
		invocations = append(invocations, inv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return invocations, nil
}

func parseInvocation(fields []string) (Invocation, error) {
	inv := Invocation{Params: DefaultParams}
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "-dir":
			i++
			if i >= len(fields) {
				return inv, fmt.Errorf("-dir requires a value")
			}
			inv.Dir = fields[i]
		case "-seed":
			i++
			v, err := strconv.ParseInt(fields[i], 10, 32)
			if err != nil {
				return inv, fmt.Errorf("-seed: %w", err)
			}
			inv.Params.Seed = int32(v)
		case "-samples":
			i++
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return inv, fmt.Errorf("-samples: %w", err)
			}
			inv.Params.NumSamples = v
		default:
			return inv, fmt.Errorf("unknown flag %q", fields[i])
		}
	}
	if inv.Dir == "" {
		return inv, fmt.Errorf("missing -dir")
	}
	return inv, nil
}
