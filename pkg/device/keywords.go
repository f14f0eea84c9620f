package device

import (
	"slices"
	"strings"
)

// Keywords holds the four keyword groups the classifier matches against.
// Each group is an ordered list of lower-case substrings. Groups may overlap;
// overlap is resolved by evaluation order in Classify, not by specificity.
type Keywords struct {
	TV      []string `yaml:"tv" json:"tv" env:"DEVICE_TV_KEYWORDS" envSeparator:" "`
	Tablet  []string `yaml:"tablet" json:"tablet" env:"DEVICE_TABLET_KEYWORDS" envSeparator:" "`
	Mobile  []string `yaml:"mobile" json:"mobile" env:"DEVICE_MOBILE_KEYWORDS" envSeparator:" "`
	Desktop []string `yaml:"desktop" json:"desktop" env:"DEVICE_DESKTOP_KEYWORDS" envSeparator:" "`
}

// DefaultKeywords returns the built-in keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		TV: []string{
			"smarttv", "smart-tv", "googletv", "appletv", "hbbtv", "netcast",
			"webos", "web0s", "tizen", "bravia", "viera", "aquos", "roku", "crkey",
		},
		Tablet: []string{
			"ipad", "tablet", "tab", "kindle", "silk", "playbook", "mediapad",
			"xoom", "sm-t", "sm-p", "gt-p", "kftt", "kfjwi",
		},
		Mobile: []string{
			"iphone", "ipod", "mobile", "phone", "blackberry", "bb10",
			"iemobile", "nokia", "symbian", "kaios",
		},
		Desktop: []string{
			"windows", "macintosh", "x11", "linux", "cros", "ubuntu",
			"fedora", "debian", "freebsd", "openbsd",
		},
	}
}

// Normalize returns a copy with every keyword trimmed and lower-cased.
// Space-joined entries are split into separate keywords, empty entries are
// dropped and duplicates keep their first position. The result never shares
// backing arrays with k.
func (k Keywords) Normalize() Keywords {
	return Keywords{
		TV:      normalizeGroup(k.TV),
		Tablet:  normalizeGroup(k.Tablet),
		Mobile:  normalizeGroup(k.Mobile),
		Desktop: normalizeGroup(k.Desktop),
	}
}

// Merge returns base with every non-empty group of override replacing the
// corresponding group. The result is normalized.
func (k Keywords) Merge(override Keywords) Keywords {
	base := k.Normalize()
	override = override.Normalize()
	if len(override.TV) > 0 {
		base.TV = override.TV
	}
	if len(override.Tablet) > 0 {
		base.Tablet = override.Tablet
	}
	if len(override.Mobile) > 0 {
		base.Mobile = override.Mobile
	}
	if len(override.Desktop) > 0 {
		base.Desktop = override.Desktop
	}
	return base
}

// IsEmpty reports whether all four groups are empty.
func (k Keywords) IsEmpty() bool {
	return len(k.TV) == 0 && len(k.Tablet) == 0 && len(k.Mobile) == 0 && len(k.Desktop) == 0
}

func normalizeGroup(group []string) []string {
	out := make([]string, 0, len(group))
	for _, entry := range group {
		for _, word := range strings.Fields(strings.ToLower(entry)) {
			if !slices.Contains(out, word) {
				out = append(out, word)
			}
		}
	}
	return out
}

// matcher is a normalized snapshot of Keywords. It is unexported so callers
// cannot edit a group after normalization.
type matcher struct {
	tv, tablet, mobile, desktop []string
}

func (k Keywords) matcher() matcher {
	n := k.Normalize()
	return matcher{tv: n.TV, tablet: n.Tablet, mobile: n.Mobile, desktop: n.Desktop}
}

// matchAny reports whether any keyword of group occurs in s.
// s must already be lower-cased.
func matchAny(group []string, s string) bool {
	for _, keyword := range group {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
