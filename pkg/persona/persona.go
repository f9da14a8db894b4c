package persona

// Persona is a public profile that can be invited to hangouts. Each persona
// belongs to the email account whose calendar is checked for availability.
type Persona struct {
	Id                  string
	OwnerEmail          string
	Name                string
	Type                string
	Description         string
	ProfileImage        string
	Interests           []string
	PreferredActivities []string
}
