package user

// ExternalIdentity is what a verified Google or Apple identity token says about its holder.
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}
