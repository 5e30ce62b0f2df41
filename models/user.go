package models

// User is the mock-auth identity. Role is "admin" or "customer".
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ContactMessage is a stored contact-form submission. UserID is filled
// in when the sender was logged in.
type ContactMessage struct {
	UserID    string `json:"userId,omitempty" bson:"userId,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Subject   string `json:"subject" bson:"subject"`
	Message   string `json:"message" bson:"message"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
