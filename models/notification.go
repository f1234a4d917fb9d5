package models

// EmailPayload is the task body enqueued for the mail worker.
type EmailPayload struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}
