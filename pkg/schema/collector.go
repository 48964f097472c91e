package schema

import "github.com/dmitrymomot/schemakit/pkg/validator"

// collector accumulates the violations of one walk. A negative limit means
// unlimited.
type collector struct {
	errs  validator.ValidationErrors
	limit int
}

func newCollector(limit int) *collector {
	return &collector{errs: validator.ValidationErrors{}, limit: limit}
}

func (c *collector) full() bool {
	return c.limit >= 0 && len(c.errs) >= c.limit
}

// remaining is the limit for a child collector.
func (c *collector) remaining() int {
	if c.limit < 0 {
		return -1
	}
	return c.limit - len(c.errs)
}

// add records errs until the limit is reached.
func (c *collector) add(errs ...validator.ValidationError) {
	for _, e := range errs {
		if c.full() {
			return
		}
		c.errs = append(c.errs, e)
	}
}
