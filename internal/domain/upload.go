package domain

type UploadState string

const (
	UploadIdle         UploadState = "idle"
	UploadFileSelected UploadState = "file_selected"
	UploadUploading    UploadState = "uploading"
	UploadUploaded     UploadState = "uploaded"
	UploadFailed       UploadState = "failed"
)

func (s UploadState) Label() string {
	switch s {
	case UploadIdle:
		return "no file"
	case UploadFileSelected:
		return "ready to upload"
	case UploadUploading:
		return "uploading"
	case UploadUploaded:
		return "uploaded"
	case UploadFailed:
		return "upload failed"
	default:
		return string(s)
	}
}

// CanSelect reports whether a new file may be staged from s.
func (s UploadState) CanSelect() bool {
	return s != UploadUploading
}

// CanSubmit reports whether a staged file may be submitted from s. Failed
// keeps the staged file so the same upload can be retried.
func (s UploadState) CanSubmit() bool {
	return s == UploadFileSelected || s == UploadFailed
}
