package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleWaiter   = "waiter"
	RoleKitchen  = "kitchen"
	RoleManager  = "manager"
	RoleCashier  = "cashier"
	RoleCustomer = "customer"
)

type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"password,omitempty" db:"password"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWaiter, RoleKitchen, RoleManager, RoleCashier, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether role belongs to restaurant staff. Every role except customer is staff.
func IsStaff(role string) bool {
	return ValidRole(role) && role != RoleCustomer
}
