// Package hydrate fills host structs from maps, objects and scalars.
//
// A host is a pointer to a struct embedding Fillable. Two fill modes exist:
//
//   - FillBy (push): iterate the source's keys. Each value goes to a setter,
//     a declared field, a dynamic field or an overflow bucket, in that order.
//     Integer keys always land in the overflow bucket.
//   - FillPropsBy (pull): iterate the host's declared fields and fetch each
//     one from the source. Nil candidates never overwrite a field and
//     unknown source keys are ignored.
//
// # Setters and getters
//
// Setters are methods on the host named "Set" + UpperCamel(key) taking a
// single any argument, optionally returning an error. Getters are methods on
// object sources named "Get" + UpperCamel(key) with no arguments. Both are
// discovered once per type and kept in a registry; Register adds explicit
// entries.
//
// # Query filter
//
// Only and Exclude build a one-shot allow/deny filter on the host. Keys are
// unioned across calls, deny wins over allow, and every fill clears the
// filter when it is done:
//
//	h := &User{}
//	_, err := hydrate.For(h).Only("name").FillBy(src)
package hydrate
