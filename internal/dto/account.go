package dto

// MaskedAPIKey is what settings reads return instead of the stored key.
// Updates submitting this exact value keep the stored key unchanged.
const MaskedAPIKey = "--- NOT DISPLAYED FOR SECURITY ---"

type UserListItem struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	IsAdministrator bool   `json:"is_administrator"`
	IsSelf          bool   `json:"is_self"`
}

type SystemSettings struct {
	EmailAPIKey            string `json:"email_api_key"`
	SystemEmailAddress     string `json:"system_email_address"`
	RegistrationEnabled    bool   `json:"registration_enabled"`
	EmailDomainRestriction string `json:"email_domain_restriction"`
}

// Operations is the anonymous flags endpoint payload the client polls before
// offering email-dependent flows.
type Operations struct {
	AllOperationsAllowed bool `json:"all_operations_allowed"`
	RegistrationEnabled  bool `json:"registration_enabled"`
}
