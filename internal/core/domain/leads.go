package domain

import "time"

// Lead-capture entities. Each row is created once by a public form
// submission, never mutated, and deletable only from the admin side.

// Contact is a message sent through the contact form.
type Contact struct {
	ID        int
	Name      string
	Phone     string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Newsletter is a subscription; the email is unique across rows.
type Newsletter struct {
	ID        int
	Email     string
	CreatedAt time.Time
}

// Entrustment is an owner asking the agency to market their property.
type Entrustment struct {
	ID            int
	OwnerName     string
	Phone         string
	Email         string
	PropertyType  string
	GovernorateID *int
	Details       string
	CreatedAt     time.Time
}

// PropertyRequest is a buyer describing what they are looking for.
type PropertyRequest struct {
	ID            int
	Name          string
	Phone         string
	Email         string
	PropertyType  string
	GovernorateID *int
	MinPrice      *float64
	MaxPrice      *float64
	Details       string
	CreatedAt     time.Time
}
