package handler

// Envelope is the uniform wire wrapper returned by every endpoint. Count is
// present only on list responses, Error only on server faults.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func listEnvelope(data interface{}, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}

func dataEnvelope(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func messageEnvelope(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func failEnvelope(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func errorEnvelope(message string, err error) Envelope {
	return Envelope{Success: false, Message: message, Error: err.Error()}
}
