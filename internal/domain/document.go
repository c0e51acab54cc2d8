package domain

// DownloadableDocument is a catalog entry for a document visitors can
// request (brochures, compliance sheets, case studies).
type DownloadableDocument struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	FileURL     *string `json:"file_url,omitempty"`
	FileType    *string `json:"file_type,omitempty"`
	FileSize    *int64  `json:"file_size,omitempty"`
}

// DownloadRequest is the payload the site sends when a visitor asks for a
// document; it is relayed to a server-side function that records the lead
// and mails the file.
type DownloadRequest struct {
	Name     string               `json:"name"`
	Phone    string               `json:"phone"`
	Email    string               `json:"email"`
	Company  *string              `json:"company,omitempty"`
	Document DownloadableDocument `json:"document"`
}

// Validate checks the required fields of a download request.
func (r *DownloadRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.Phone == "" {
		return &ValidationError{Field: "phone", Message: "is required"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if r.Document.ID == "" {
		return &ValidationError{Field: "document.id", Message: "is required"}
	}
	if r.Document.Title == "" {
		return &ValidationError{Field: "document.title", Message: "is required"}
	}
	return nil
}

// DocumentRepository defines read operations for the download catalog.
type DocumentRepository interface {
	List() ([]*DownloadableDocument, error)
	GetByID(id string) (*DownloadableDocument, error)
}
