package domain

import "time"

// Document represents a file uploaded into a channel.
type Document struct {
	// ID is the unique identifier for the document.
	ID string `json:"id" yaml:"id"`

	// FileName is the original name of the uploaded file.
	FileName string `json:"file_name" yaml:"file_name"`

	// ChannelName is the name of the channel that owns the document.
	ChannelName string `json:"channel_name,omitempty" yaml:"channel_name,omitempty"`

	// PONumber is the purchase-order reference the document relates to.
	PONumber string `json:"po_number,omitempty" yaml:"po_number,omitempty"`

	// UploadedBy is the identity of the user who uploaded the file.
	UploadedBy string `json:"uploaded_by,omitempty" yaml:"uploaded_by,omitempty"`

	// MimeType is the content type of the file.
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`

	// Size is the file size in bytes.
	Size int64 `json:"size,omitempty" yaml:"size,omitempty"`

	// UploadedAt is when the file was uploaded.
	UploadedAt time.Time `json:"uploaded_at" yaml:"uploaded_at,omitempty"`
}
