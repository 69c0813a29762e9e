package contact

type SubmitRequest struct {
	VisitorName  string `json:"visitor_name" validate:"required"`
	VisitorEmail string `json:"visitor_email" validate:"required,email"`
	VisitorPhone string `json:"visitor_phone,omitempty"`
	Subject      string `json:"subject" validate:"required"`
	Message      string `json:"message" validate:"required,min=10"`
}

type SubmitResponse struct {
	MessageID int64  `json:"message_id"`
	Message   string `json:"message"`
}
