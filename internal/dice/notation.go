package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// notationRegex matches [N]dS[+M|-M]. The count is optional and defaults
// to 1, the "d" is case-insensitive, and the modifier carries its sign.
var notationRegex = regexp.MustCompile(`^(\d+)?[dD](\d+)([+-]\d+)?$`)

// ParseNotation parses a dice-notation string into a RollSpec.
//
// Accepted forms include "d20", "1d6", "2d12+2" and "5d6-8". Surrounding
// whitespace is ignored. Strings that do not match the grammar fail with
// ErrInvalidNotation; counts outside 1-1000 fail with ErrInvalidCount,
// sides outside 2-1000 fail with ErrInvalidSides, and modifiers too large
// to represent fail with ErrInvalidModifier.
func ParseNotation(notation string) (RollSpec, error) {
	matches := notationRegex.FindStringSubmatch(strings.TrimSpace(notation))
	if matches == nil {
		return RollSpec{}, fmt.Errorf("parse notation %q: %w", notation, ErrInvalidNotation)
	}

	count := 1
	if matches[1] != "" {
		parsed, err := strconv.Atoi(matches[1])
		if err != nil {
			// Only reachable when the digits overflow int.
			return RollSpec{}, fmt.Errorf("parse count %q: %w", matches[1], ErrInvalidCount)
		}
		count = parsed
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return RollSpec{}, fmt.Errorf("parse sides %q: %w", matches[2], ErrInvalidSides)
	}

	modifier := 0
	if matches[3] != "" {
		parsed, err := strconv.Atoi(matches[3])
		if err != nil {
			// Only reachable when the digits overflow int.
			return RollSpec{}, fmt.Errorf("parse modifier %q: %w", matches[3], ErrInvalidModifier)
		}
		modifier = parsed
	}

	spec := RollSpec{
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}
	if err := spec.Validate(); err != nil {
		return RollSpec{}, fmt.Errorf("parse notation %q: %w", notation, err)
	}

	return spec, nil
}
