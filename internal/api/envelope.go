package api

// Envelope is the response shape shared by every endpoint: "success" with
// optional data, "fail" with a message for client errors, "error" for
// server faults.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func Fail(message string) Envelope {
	return Envelope{Status: "fail", Message: message}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}
