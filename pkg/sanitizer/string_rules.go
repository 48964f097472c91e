package sanitizer

// Replacement replaces every match of Pattern with With.
type Replacement struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	With    string `yaml:"with" json:"with"`
}

// StringRules configures SanitizeString. Steps run in declaration order:
// trim, case, HTML, truncate, normalize, replace, remove, slugify,
// character class, whitespace, line breaks.
type StringRules struct {
	Trim bool `yaml:"trim,omitempty" json:"trim,omitempty"`

	Lowercase  bool `yaml:"lowercase,omitempty" json:"lowercase,omitempty"`
	Uppercase  bool `yaml:"uppercase,omitempty" json:"uppercase,omitempty"`
	Capitalize bool `yaml:"capitalize,omitempty" json:"capitalize,omitempty"`
	TitleCase  bool `yaml:"titleCase,omitempty" json:"titleCase,omitempty"`

	StripHTML bool `yaml:"stripHTML,omitempty" json:"stripHTML,omitempty"`
	Escape    bool `yaml:"escape,omitempty" json:"escape,omitempty"`
	Unescape  bool `yaml:"unescape,omitempty" json:"unescape,omitempty"`

	// Truncate is the maximum length in characters, TruncateSuffix included.
	Truncate       int    `yaml:"truncate,omitempty" json:"truncate,omitempty"`
	TruncateSuffix string `yaml:"truncateSuffix,omitempty" json:"truncateSuffix,omitempty"`

	// Normalize is one of NFC, NFD, NFKC, NFKD.
	Normalize string `yaml:"normalize,omitempty" json:"normalize,omitempty"`

	Replace []Replacement `yaml:"replace,omitempty" json:"replace,omitempty"`
	Remove  []string      `yaml:"remove,omitempty" json:"remove,omitempty"`

	Slugify bool `yaml:"slugify,omitempty" json:"slugify,omitempty"`

	Alphanumeric bool `yaml:"alphanumeric,omitempty" json:"alphanumeric,omitempty"`
	Alpha        bool `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Numeric      bool `yaml:"numeric,omitempty" json:"numeric,omitempty"`

	CollapseWhitespace  bool `yaml:"collapseWhitespace,omitempty" json:"collapseWhitespace,omitempty"`
	NormalizeLineBreaks bool `yaml:"normalizeLineBreaks,omitempty" json:"normalizeLineBreaks,omitempty"`
}

// SanitizeString applies rules to s in their fixed order.
func SanitizeString(s string, rules StringRules) string {
	return rules.Pipeline()(s)
}

// Pipeline returns the enabled steps as one reusable transform.
func (r StringRules) Pipeline() func(string) string {
	return Compose(r.steps()...)
}

func (r StringRules) steps() []func(string) string {
	var steps []func(string) string
	add := func(enabled bool, fn func(string) string) {
		if enabled {
			steps = append(steps, fn)
		}
	}

	add(r.Trim, Trim)

	add(r.Lowercase, ToLower)
	add(r.Uppercase, ToUpper)
	add(r.Capitalize, Capitalize)
	add(r.TitleCase, TitleCase)

	add(r.StripHTML, StripHTML)
	add(r.Escape, EscapeHTML)
	add(r.Unescape, UnescapeHTML)

	add(r.Truncate > 0, func(s string) string { return Truncate(s, r.Truncate, r.TruncateSuffix) })
	add(r.Normalize != "", func(s string) string { return Normalize(s, r.Normalize) })

	for _, rep := range r.Replace {
		add(true, func(s string) string { return ReplacePattern(s, rep.Pattern, rep.With) })
	}
	for _, pattern := range r.Remove {
		add(true, func(s string) string { return RemovePattern(s, pattern) })
	}

	add(r.Slugify, Slugify)

	add(r.Alphanumeric, KeepAlphanumeric)
	add(r.Alpha, KeepAlpha)
	add(r.Numeric, KeepDigits)

	add(r.CollapseWhitespace, CollapseWhitespace)
	add(r.NormalizeLineBreaks, NormalizeLineBreaks)

	return steps
}
