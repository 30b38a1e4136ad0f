// Package naming translates field keys between case conventions.
//
// Source keys arrive as snake_case, kebab-case or camelCase. Accessors on
// hosts and sources are Go methods, so a key is rendered in UpperCamel form
// and prefixed:
//
//	Accessor("Set", "foo_bar") == "SetFooBar"
//	Accessor("Get", "bazBan")  == "GetBazBan"
package naming
