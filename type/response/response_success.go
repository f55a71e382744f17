package response

type SuccessResponse struct {
	Success       bool    `json:"success"`
	Message       *string `json:"message,omitempty"`
	CertificateId *string `json:"certificateId,omitempty"`
}

func Success(msg string) *SuccessResponse {
	return &SuccessResponse{
		Success: true,
		Message: &msg,
	}
}

// WithCertificate echoes the issued certificate id back to the caller.
func (r *SuccessResponse) WithCertificate(certificateId string) *SuccessResponse {
	r.CertificateId = &certificateId
	return r
}
