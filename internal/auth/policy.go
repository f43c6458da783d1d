package auth

// ResolveEffectiveOwner applies the ownership-scoping policy.
//
// A standard caller is always scoped to its own identifier: any requested
// owner is silently substituted, never rejected, so a user cannot name
// another owner. An administrative caller is scoped exactly to the
// requested owner.
func ResolveEffectiveOwner(actor *Actor, requestedOwner string) string {
	if actor.IsAdmin() {
		return requestedOwner
	}
	return actor.ID
}
