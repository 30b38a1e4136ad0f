// Package profile provides named, reusable query presets for hydrate.
//
// A profile file pins which keys a fill may touch, so the same allow/deny
// lists are not repeated at every call site.
//
// # Schema Overview
//
//	version: "1"
//	profiles:
//	  - name: public
//	    description: fields a client may change
//	    only: [name, email]      # a single key or a list
//	    exclude: password_hash
//	    bucket: extra            # overflow bucket for push fills
//	    dynamic_fields: false
//	    default: ""              # fallback for pull fills
//
// A profile is a hydrate.Preset, and Options returns its fill options:
//
//	p, _ := file.Lookup("public")
//	_, err := hydrate.For(user).Apply(p).FillBy(src, p.Options()...)
package profile
