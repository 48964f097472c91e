// Package sanitizer applies deterministic cleanup transforms to values.
//
// Sanitize dispatches on the value's kind (see package kind) to a rule set:
//
//	clean := sanitizer.Sanitize(input, sanitizer.Rules{
//	    String: &sanitizer.StringRules{Trim: true, Lowercase: true, Truncate: 64},
//	    Number: &sanitizer.NumberRules{Round: sanitizer.RoundFloor},
//	    Object: &sanitizer.ObjectRules{RemoveEmpty: true},
//	})
//
// A Rules value with a Transform function is applied directly instead.
// Each rule set runs its steps in a fixed order, so for example Truncate
// measures the string after Trim and case conversion:
//
//	sanitizer.SanitizeString("  ABCDEFGHIJ  ", sanitizer.StringRules{
//	    Trim: true, Lowercase: true, Truncate: 5,
//	}) // "abcde"
//
// # Helpers
//
// The individual transforms (Trim, Capitalize, TitleCase, Slugify,
// CollapseWhitespace, Clamp, RoundTo, ...) are exported and can be
// combined with the generic Apply and Compose pipelines:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace, sanitizer.ToLower)
//	clean("  Mixed   CASE  ") // "mixed case"
//
// # Error handling
//
// Sanitization never fails for well-formed rule sets. Replace and Remove
// patterns are compiled on use and panic when they are not valid regular
// expressions; building such a rule set is a programming error.
//
// StripHTML and Escape are cosmetic cleanup, not a security boundary: use a
// dedicated HTML sanitizer for untrusted markup.
//
// All functions are pure and safe for concurrent use.
package sanitizer
