package dirmap

import (
	"fmt"
	"strconv"
	"strings"
)

// LiteralPrefix forces ParseIndex to treat the rest of an argument as a Name.
const LiteralPrefix = "@"

// ParseIndex builds an Index from command-line style arguments.
//
// A single argument is parsed as follows:
//   - "@rest" is the literal Name "rest", colons included; "@10:" is the
//     Name "10:", never a Range
//   - an integer such as "3" or "-1" is a Position
//   - "start:stop" or "start:stop:step", each part optional, is a Range whose
//     endpoints are Positions when numeric and Names otherwise; endpoints are
//     taken verbatim, so a numeric name cannot be a Range endpoint
//   - anything else is a Name
//
// Several arguments form a KeyList; ranges are not allowed inside a list.
func ParseIndex(args []string) (Index, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty index", ErrInvalidIndexKind)
	}
	if len(args) == 1 {
		return parseOne(args[0])
	}

	keys := make(KeyList, 0, len(args))
	for _, arg := range args {
		idx, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		key, ok := idx.(Key)
		if !ok {
			return nil, fmt.Errorf("%w: range %q inside a key list", ErrInvalidIndexKind, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ParseKey is ParseIndex restricted to a single Name or Position.
func ParseKey(arg string) (Key, error) {
	idx, err := parseOne(arg)
	if err != nil {
		return nil, err
	}
	key, ok := idx.(Key)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a single key", ErrInvalidIndexKind, arg)
	}
	return key, nil
}

func parseOne(arg string) (Index, error) {
	if strings.HasPrefix(arg, LiteralPrefix) {
		return Name(strings.TrimPrefix(arg, LiteralPrefix)), nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return Position(n), nil
	}
	if !strings.Contains(arg, ":") {
		return Name(arg), nil
	}

	parts := strings.Split(arg, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: range %q has more than three parts", ErrInvalidIndexKind, arg)
	}

	r := Range{
		Start: parseEndpoint(parts[0]),
		Stop:  parseEndpoint(parts[1]),
	}
	if len(parts) == 3 && parts[2] != "" {
		step, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: range step %q is not an integer", ErrInvalidIndexKind, parts[2])
		}
		if step == 0 {
			return nil, fmt.Errorf("%w: range step must not be zero", ErrInvalidIndexKind)
		}
		r.Step = step
	}
	return r, nil
}

func parseEndpoint(s string) Key {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Position(n)
	}
	return Name(s)
}
