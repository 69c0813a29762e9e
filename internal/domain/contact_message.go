package domain

import "time"

// ContactMessage is one inbound inquiry from the public contact form.
// The row is the authoritative record; notification emails are
// advisory side channels. Messages are never deleted by this service.
type ContactMessage struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	VisitorName  string    `gorm:"column:visitor_name;size:255" json:"visitor_name"`
	VisitorEmail string    `gorm:"column:visitor_email;size:320" json:"visitor_email"`
	VisitorPhone string    `gorm:"column:visitor_phone;size:50" json:"visitor_phone,omitempty"`
	Subject      string    `gorm:"column:subject;size:255" json:"subject"`
	Message      string    `gorm:"column:message;type:text" json:"message"`
	IsRead       int       `gorm:"column:is_read;default:0" json:"is_read"`
	EmailSent    int       `gorm:"column:email_sent;default:0" json:"email_sent"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
