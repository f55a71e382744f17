package shared

// CertificateArtifact is the rendered image and document pair for one request.
// Both files are named after CertificateId.
type CertificateArtifact struct {
	CertificateId string `json:"certificateId"`
	ImagePath     string `json:"imagePath"`
	ImageFormat   string `json:"imageFormat"`
	DocumentPath  string `json:"documentPath"`
}
