// Package catalog provides ready-made schema nodes and a registry to look
// them up by name.
//
// The constructors (Email, Password, Username, URL, Phone, Address, Product,
// Order, Pagination) return a fresh node on every call, so callers may
// adjust the result:
//
//	signup := schema.Object(map[string]*schema.Node{
//	    "email":    catalog.Email(),
//	    "password": catalog.Password(),
//	    "username": catalog.Username(),
//	})
//
// Schemas can also be declared in YAML or JSON documents mapping names to
// nodes and loaded with LoadFile or Registry.LoadDir:
//
//	signup:
//	  type: object
//	  properties:
//	    email: {type: string, required: true, trim: true, email: true}
//	    age:   {type: number, min: 13, integer: true}
//
// Decode failures wrap ErrInvalidDocument.
package catalog
