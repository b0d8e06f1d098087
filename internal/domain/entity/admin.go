package entity

import "time"

// SessionRole sessiya egasining roli
type SessionRole string

const (
	RoleAdmin    SessionRole = "admin"
	RoleCustomer SessionRole = "customer"
)

// Session admin yoki mijoz sessiyasi
type Session struct {
	Token        string      `json:"token"`
	Subject      string      `json:"subject"` // admin yoki customer ID
	Role         SessionRole `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
	LastActivity time.Time   `json:"lastActivity"`
}

// Expired reports whether the session has been idle longer than ttl.
func (s Session) Expired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(s.LastActivity) > ttl
}

// Admin panel foydalanuvchisi
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminAction admin harakatlari
type AdminAction struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Action    string    `json:"action"` // "login", "upload_catalog", "bulk_edit"
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Customer do'kon mijozi
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
