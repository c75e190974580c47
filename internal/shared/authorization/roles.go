package authorization

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
	RoleSeller     UserRole = "SELLER"
	RoleSpecialist UserRole = "SPECIALIST"
)

// AllRoles lists every role in privilege order.
var AllRoles = []UserRole{RoleSuperAdmin, RoleAdmin, RoleUser, RoleSeller, RoleSpecialist}

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin is true for ADMIN and SUPER_ADMIN.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
