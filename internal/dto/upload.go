package dto

import "github.com/andreyxaxa/Photo-Gallery/internal/entity"

// UploadFile is one file selected or dropped by the user.
type UploadFile struct {
	OriginalName string
	ContentType  string
	Data         []byte
}

type UploadResult struct {
	OriginalName string              `json:"original_name"`
	Record       *entity.ImageRecord `json:"record,omitempty"`
	Error        string              `json:"error,omitempty"`
	Err          error               `json:"-"`
}

func (r UploadResult) OK() bool {
	return r.Err == nil
}
