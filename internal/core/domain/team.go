package domain

// Team is a squad of users. Membership is a plain set of user ids with no
// per-member role; a member id may dangle after the user is deleted.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
	MemberIDs   []string `json:"member_ids"`
}
