package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either the rendered Subject/Text/HTML are set, or Template and Data are
// rendered by the worker.
type EmailJob struct {
	To       string         `json:"to"`
	ReplyTo  string         `json:"reply_to,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

func (j EmailJob) Message() Message {
	return Message{To: j.To, ReplyTo: j.ReplyTo, Subject: j.Subject, Text: j.Text, HTML: j.HTML}
}
