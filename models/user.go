package models

const (
	RoleAdmin    = "admin"
	RoleWaiter   = "waiter"
	RoleCustomer = "customer"
)

// User datang dari response login/register API pusat.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

func (u User) IsWaiter() bool {
	return u.Role == RoleWaiter
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
