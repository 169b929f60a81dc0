package op

//
// GENERATED CODE - DO NOT EDIT
//
// Regenerate with: go run ./internal/opgen
//

// Policy describes what happens when the decoder sees an op that isn't a
// member of the running version's instruction set.
type Policy int

const (
	// PolicyIgnore treats the op as a no-op (B93, B97).
	PolicyIgnore Policy = iota
	// PolicyReflect negates the IP's delta, the canonical soft error (B98).
	PolicyReflect
)

// UnimplementedPolicy returns the policy applied to an op outside v's
// instruction set.
func UnimplementedPolicy(v Version) Policy {
	if v == B98 {
		return PolicyReflect
	}
	return PolicyIgnore
}

// b93Set is the Befunge-93 core instruction set, including the space
// no-op.
var b93Set = buildSet("+-*/%!`><^v?_|\":\\$.,#pg&~0123456789@ ")

// b97Additions are the instructions Befunge-97 adds over b93Set: fetch
// character literal (') and hexadecimal digit pushes (a-f).
var b97Additions = buildSet("'abcdef")

// b98Additions are the instructions Befunge-98 adds over B97: block
// comments, turns, the stack-stack, concurrency, iteration, jump, system
// info, file IO, and shell execute. True 3-D motion (h/l/m) is out of
// scope (see Non-goals).
var b98Additions = buildSet(";()[]{}ijknoqrstuwxyz=")

func buildSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// inVersion reports whether r is a member of v's instruction set.
func inVersion(v Version, r rune) bool {
	if b93Set[r] {
		return true
	}
	if v == B97 || v == B98 {
		if b97Additions[r] {
			return true
		}
	}
	if v == B98 {
		if b98Additions[r] {
			return true
		}
	}
	return false
}
