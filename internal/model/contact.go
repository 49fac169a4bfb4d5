package model

import "time"

// Field length limits enforced by the validator and mirrored by the
// column definitions in migrations/0001_create_contacts.up.sql.
const (
	MaxFullNameLen = 100
	MaxPhoneLen    = 20
	MaxEmailLen    = 100
	MaxSubjectLen  = 100
	MaxMessageLen  = 5000
)

// Contact is one contact-form submission. ID and CreatedAt are assigned
// by the database on insert and are never accepted from clients.
type Contact struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
