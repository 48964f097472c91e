package sanitizer

import "regexp"

// Compiled once at package init.
var (
	horizontalSpaceRegex = regexp.MustCompile(`[^\S\r\n]+`)
	lineBreakRegex       = regexp.MustCompile(`\r\n?`)

	// HTML stripping
	htmlTagRegex   = regexp.MustCompile(`<[^>]*>`)
	scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleTagRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)

	// Slug generation
	slugNonWordRegex = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRegex   = regexp.MustCompile(`[\s_]+`)
	slugHyphenRegex  = regexp.MustCompile(`-+`)
)
