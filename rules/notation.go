package rules

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-life/utils"
)

// Named rule sets in B/S notation.
var named = map[string]string{
	"conway":   "B3/S23",
	"life":     "B3/S23",
	"highlife": "B36/S23",
	"seeds":    "B2/S",
	"daynight": "B3678/S34678",
	"maze":     "B3/S12345",
}

/*
Parse reads a rule set in B/S notation ("B3/S23", case-insensitive, either
half may come first) or one of the named rules ("conway", "highlife", ...).
*/
func Parse(s string) (RuleSet, error) {
	s = strings.TrimSpace(s)
	if alias, ok := named[strings.ToLower(s)]; ok {
		s = alias
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return RuleSet{}, errors.Wrapf(utils.ErrInvalidConfiguration, "[rules.Parse] malformed rule %q", s)
	}

	var (
		birth, survive         []int
		seenBirth, seenSurvive bool
	)
	for _, part := range parts {
		if part == "" {
			return RuleSet{}, errors.Wrapf(utils.ErrInvalidConfiguration, "[rules.Parse] malformed rule %q", s)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, "[rules.Parse] rule %q", s)
		}
		switch part[0] {
		case 'B', 'b':
			if seenBirth {
				return RuleSet{}, errors.Wrapf(utils.ErrInvalidConfiguration, "[rules.Parse] duplicate birth part in %q", s)
			}
			seenBirth, birth = true, counts
		case 'S', 's':
			if seenSurvive {
				return RuleSet{}, errors.Wrapf(utils.ErrInvalidConfiguration, "[rules.Parse] duplicate survive part in %q", s)
			}
			seenSurvive, survive = true, counts
		default:
			return RuleSet{}, errors.Wrapf(utils.ErrInvalidConfiguration, "[rules.Parse] unknown part %q in %q", part, s)
		}
	}

	return New(birth, survive)
}

func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, errors.Wrapf(utils.ErrInvalidConfiguration, "bad neighbor count %q", r)
		}
		counts = append(counts, int(r-'0'))
	}
	return counts, nil
}
