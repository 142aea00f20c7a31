package outfit

import (
	"strconv"
	"strings"
)

// MatchRule picks one owned item by code prefix, or FallbackID when none is left.
type MatchRule struct {
	Prefix     string
	FallbackID string
}

// Resolve returns one asset id per rule, in rule order. Owned ids are scanned in order
// and the first unused id with the rule's prefix wins; an owned id is never used twice.
func Resolve(owned []int64, rules []MatchRule) []string {
	used := make(map[int64]bool, len(owned))
	out := make([]string, len(rules))
	for i, rule := range rules {
		out[i] = rule.FallbackID
		for _, id := range owned {
			if used[id] {
				continue
			}
			s := strconv.FormatInt(id, 10)
			if strings.HasPrefix(s, rule.Prefix) {
				used[id] = true
				out[i] = s
				break
			}
		}
	}
	return out
}

// AvatarID returns the first skill whose decimal form ends in "06", or def.
func AvatarID(skills []int64, def int64) int64 {
	for _, id := range skills {
		if strings.HasSuffix(strconv.FormatInt(id, 10), "06") {
			return id
		}
	}
	return def
}

// WeaponID returns the first displayed weapon skin.
func WeaponID(skins []int64) (int64, bool) {
	if len(skins) == 0 {
		return 0, false
	}
	return skins[0], true
}
