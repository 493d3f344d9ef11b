package contact

// Reply is the JSON body of every relay response.
// Error carries provider detail and is only set in development.
type Reply struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
