package entity

type UserRole string

const (
	RoleGP      UserRole = "gp"
	RoleTaluk   UserRole = "taluk"
	RoleMLA     UserRole = "mla"
	RoleAdmin   UserRole = "admin"
	RoleCitizen UserRole = "citizen"
)

// Roles lists every role a member can be created with.
var Roles = []UserRole{RoleGP, RoleTaluk, RoleMLA, RoleAdmin, RoleCitizen}

func (r UserRole) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	BaseSimple
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Username     *string  `db:"username"` // members created by an admin may have none
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
