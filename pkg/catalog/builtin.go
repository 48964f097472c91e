package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

var (
	str     = kind.Types{kind.String}
	number  = kind.Types{kind.Number}
	boolean = kind.Types{kind.Boolean}
)

// Email is a required, trimmed, lower-cased email address.
func Email() *schema.Node {
	return &schema.Node{
		Type:      str,
		Required:  true,
		Trim:      true,
		Lowercase: true,
		MaxLength: schema.Ptr(254),
		Email:     true,
	}
}

// Password is a required password checked against the default policy and
// the common password list.
func Password() *schema.Node {
	policy := validator.DefaultPasswordPolicy()
	return &schema.Node{
		Type:      str,
		Required:  true,
		MinLength: schema.Ptr(policy.MinLength),
		MaxLength: schema.Ptr(policy.MaxLength),
		Validate: func(value any, c schema.Context) error {
			s, _ := value.(string)
			errs := validator.Collect(true,
				validator.NotCommonPassword(c.Path, s),
				validator.StrongPassword(c.Path, s, policy),
			)
			if len(errs) > 0 {
				return errors.New(errs[0].Message)
			}
			return nil
		},
	}
}

// Username is 3-32 lower-case letters, digits, dots, dashes or
// underscores, starting with a letter or digit.
func Username() *schema.Node {
	return &schema.Node{
		Type:      str,
		Required:  true,
		Trim:      true,
		Lowercase: true,
		MinLength: schema.Ptr(3),
		MaxLength: schema.Ptr(32),
		Pattern:   `^[a-z0-9][a-z0-9._-]*$`,
	}
}

// URL is an optional absolute URL.
func URL() *schema.Node {
	return &schema.Node{
		Type:      str,
		Trim:      true,
		MaxLength: schema.Ptr(2048),
		URL:       true,
	}
}

// Phone is an E.164 phone number. Spaces, dots, dashes and parentheses are
// removed before the check.
func Phone() *schema.Node {
	return &schema.Node{
		Type: str,
		Sanitize: &sanitizer.Rules{String: &sanitizer.StringRules{
			Trim:   true,
			Remove: []string{`[\s.()-]`},
		}},
		Pattern: `^\+?[1-9]\d{6,14}$`,
	}
}

// Address is a postal address with an ISO 3166 alpha-2 country code.
func Address() *schema.Node {
	return schema.Object(map[string]*schema.Node{
		"street":     text(true, 1, 200),
		"street2":    text(false, 0, 200),
		"city":       text(true, 1, 100),
		"state":      text(false, 0, 100),
		"postalCode": {Type: str, Required: true, Trim: true, Uppercase: true, Pattern: `^[A-Z0-9][A-Z0-9 -]{1,9}$`},
		"country":    {Type: str, Required: true, Trim: true, Uppercase: true, Pattern: `^[A-Z]{2}$`},
	})
}

// Product is a catalog item. Descriptions are stripped of markup.
func Product() *schema.Node {
	return schema.Object(map[string]*schema.Node{
		"id":   {Type: str, Required: true, UUID: true},
		"name": text(true, 1, 200),
		"description": {
			Type: str,
			Sanitize: &sanitizer.Rules{String: &sanitizer.StringRules{
				StripHTML: true, Trim: true, CollapseWhitespace: true,
			}},
			MaxLength: schema.Ptr(5000),
		},
		"sku":      {Type: str, Trim: true, Uppercase: true, Pattern: `^[A-Z0-9][A-Z0-9-]{2,31}$`},
		"price":    {Type: number, Required: true, Min: schema.Ptr(0.0)},
		"currency": currency(),
		"stock":    {Type: number, Default: 0, Integer: true, Min: schema.Ptr(0.0)},
		"active":   {Type: boolean, Default: true},
		"tags": {
			Type:     kind.Types{kind.Array},
			MaxItems: schema.Ptr(20),
			Sanitize: &sanitizer.Rules{Array: &sanitizer.ArrayRules{
				Items:   &sanitizer.Rules{String: &sanitizer.StringRules{Trim: true, Lowercase: true}},
				Compact: true,
				Unique:  true,
			}},
			Items: text(true, 1, 50),
		},
	})
}

// Order is a customer order. When total is given it must equal the sum of
// quantity times unit price over the line items.
func Order() *schema.Node {
	line := schema.Object(map[string]*schema.Node{
		"productId": {Type: str, Required: true, UUID: true},
		"quantity":  {Type: number, Required: true, Integer: true, Min: schema.Ptr(1.0)},
		"unitPrice": {Type: number, Required: true, Min: schema.Ptr(0.0)},
	})

	node := schema.Object(map[string]*schema.Node{
		"id":              {Type: str, Required: true, UUID: true},
		"customerEmail":   Email(),
		"items":           {Type: kind.Types{kind.Array}, Required: true, MinItems: schema.Ptr(1), Items: line},
		"shippingAddress": withRequired(Address()),
		"billingAddress":  Address(),
		"currency":        currency(),
		"status":          {Type: str, Default: "pending", Enum: []any{"pending", "paid", "shipped", "delivered", "cancelled"}},
		"notes":           text(false, 0, 1000),
		"total":           {Type: number, Min: schema.Ptr(0.0)},
	})
	node.Validate = checkOrderTotal
	return node
}

// Pagination resolves page, limit and sort query parameters. String input
// is coerced so raw query values can be validated directly.
func Pagination() *schema.Node {
	return schema.Object(map[string]*schema.Node{
		"page":  {Type: number, Coerce: true, Default: 1, Integer: true, Min: schema.Ptr(1.0)},
		"limit": {Type: number, Coerce: true, Default: 20, Integer: true, Min: schema.Ptr(1.0), Max: schema.Ptr(100.0)},
		"sort":  {Type: str, Trim: true, Pattern: `^-?[A-Za-z_][A-Za-z0-9_]*$`},
		"order": {Type: str, Trim: true, Lowercase: true, Default: "asc", Enum: []any{"asc", "desc"}},
	})
}

func text(required bool, minLen, maxLen int) *schema.Node {
	n := &schema.Node{Type: str, Required: required, Trim: true, MaxLength: schema.Ptr(maxLen)}
	if minLen > 0 {
		n.MinLength = schema.Ptr(minLen)
	}
	return n
}

func currency() *schema.Node {
	return &schema.Node{Type: str, Trim: true, Uppercase: true, Default: "USD", Pattern: `^[A-Z]{3}$`}
}

func withRequired(n *schema.Node) *schema.Node {
	n.Required = true
	return n
}

// checkOrderTotal runs on the raw order, before its items are walked, so it
// tolerates missing or mistyped fields and leaves those to the item nodes.
func checkOrderTotal(value any, _ schema.Context) error {
	order, ok := kind.Map(value)
	if !ok {
		return nil
	}
	total, ok := kind.Float(order["total"])
	if !ok {
		return nil
	}
	items, ok := kind.Slice(order["items"])
	if !ok {
		return nil
	}

	sum := 0.0
	for _, item := range items {
		line, ok := kind.Map(item)
		if !ok {
			return nil
		}
		qty, okQty := kind.Float(line["quantity"])
		price, okPrice := kind.Float(line["unitPrice"])
		if !okQty || !okPrice {
			return nil
		}
		sum += qty * price
	}

	if math.Abs(sum-total) > 0.005 {
		return fmt.Errorf("total %.2f does not match line items sum %.2f", total, sum)
	}
	return nil
}
