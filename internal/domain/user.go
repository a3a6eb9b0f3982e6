package domain

// Users is the closed set of identities the journal recognizes, in
// enumeration order. The order matters: the most-active-user tie break in
// the all-users export picks the first user reaching the maximum count.
//
// The set is fixed at compile time and not configurable at runtime. The
// store's CHECK constraint, the credential table in config, and service
// validation all derive from this single slice.
var Users = []string{"ramprasanth", "rampradop", "shoban", "varsha"}

// ValidUser reports whether owner is a member of the closed user set.
func ValidUser(owner string) bool {
	for _, u := range Users {
		if u == owner {
			return true
		}
	}
	return false
}
