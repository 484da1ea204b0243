// Package directive provides the directive vocabulary of the accessor
// generator together with its two front ends: the struct tag / doc comment
// grammar and the YAML directive file.
//
// # Grammar
//
// Field directives live in the "property" struct tag, record directives in
// a "//property:" line of the type's doc comment:
//
//	//property:get(public),set(private),clr(crate,scope=option)
//	type Pet struct {
//	    name string   `property:"get(type=ref),set(disable)"`
//	    tags []string `property:"set(own,prefix=with_),clr(scope=auto)"`
//	    tmp  int      `property:"skip"`
//	}
//
// A group is "skip" or kind(option,...) with kind one of get, set, mut_ and
// clr. Options are the visibility keywords disable, private, crate and
// public; name=, prefix= and suffix=; type= for get (auto, ref, clone, copy)
// and set (ref, own, none, replace); full_option for set; scope= for clr
// (auto, option, all). An option given twice for one kind is an error, as
// is skip next to any other group.
//
// # Tiers
//
// Parsed directives are partial: a KindConfig only carries the sub-options
// that were written down. Builtin returns the complete base tier.
package directive
