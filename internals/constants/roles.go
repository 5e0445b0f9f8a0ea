package constants

// Role yang dikenal. Hanya ada satu identitas istimewa: admin studio.
const (
	RoleAdmin = "admin"
)

// Pesan penolakan akses (dipakai middleware AdminOnly)
const (
	ErrNoTokenProvided     = "Access denied. No token provided."
	ErrInvalidToken        = "Invalid token."
	ErrOnlyAdminsCanAccess = "Access denied. Admin privileges required."
)
