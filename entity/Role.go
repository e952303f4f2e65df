package entity

// Role is the closed set of account roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
