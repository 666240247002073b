package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance 编辑距离超过该值时不给出建议
const maxSuggestDistance = 3

// suggest 为拼错的取值找最接近的候选；先按子序列匹配，再按编辑距离
func suggest(value string, choices []string) string {
	if value == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(value, choices)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	lower := strings.ToLower(value)
	for _, c := range choices {
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// checkChoice 校验枚举取值，错误信息附带建议
func checkChoice(flag, value string, choices []string) error {
	for _, c := range choices {
		if c == value {
			return nil
		}
	}
	msg := fmt.Sprintf("invalid value %q for --%s (choose from %s)", value, flag, strings.Join(choices, ", "))
	if s := suggest(value, choices); s != "" {
		msg += fmt.Sprintf(", did you mean %q?", s)
	}
	return fmt.Errorf("%s", msg)
}
