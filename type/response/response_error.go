package response

type ErrorResponse struct {
	Error string `json:"error"`
}

const fallbackErrorMessage = "Failed to generate certificate"

func Error(msg string) *ErrorResponse {
	if msg == "" {
		msg = fallbackErrorMessage
	}
	return &ErrorResponse{
		Error: msg,
	}
}
