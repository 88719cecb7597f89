package response

// Envelope is the uniform success shape; failures go through httperr.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func NewSuccess(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
