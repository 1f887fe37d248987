package passenger

import (
	"fmt"
	"regexp"
	"strconv"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

// MaxPassengers bounds a roster so a typo such as "999999999A" fails instead of
// allocating a billion passengers.
const MaxPassengers = 99

// INS has to be tried before I.
var paxTypeToken = regexp.MustCompile(`(\d+)(INS|A|C|I)`)

func paxTypeFromCode(code string) (schema.PaxType, error) {
	switch code {
	case "A":
		return schema.ADT, nil
	case "C":
		return schema.CNN, nil
	case "I":
		return schema.INF, nil
	case "INS":
		return schema.INS, nil
	default:
		return "", fmt.Errorf("%w: %s", platformErrors.ErrorUnknownPaxType, code)
	}
}

// ParsePaxType turns a shorthand such as "2A1C" into a roster. Passenger ids run
// PAX1..PAXn across all tokens in the order the tokens appear.
func ParsePaxType(shorthand string) (schema.Roster, error) {
	roster := schema.Roster{}

	for _, match := range paxTypeToken.FindAllStringSubmatch(shorthand, -1) {
		count, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", platformErrors.ErrorInvalidFormat, shorthand)
		}

		paxType, err := paxTypeFromCode(match[2])
		if err != nil {
			return nil, err
		}

		if count > MaxPassengers-len(roster) {
			return nil, fmt.Errorf("%w: %q has more than %d passengers", platformErrors.ErrorInvalidFormat, shorthand, MaxPassengers)
		}

		for i := 0; i < count; i++ {
			roster = append(roster, schema.RosterEntry{
				ID:   fmt.Sprintf("PAX%d", len(roster)+1),
				Type: paxType,
			})
		}
	}

	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: %q", platformErrors.ErrorInvalidFormat, shorthand)
	}

	return roster, nil
}
