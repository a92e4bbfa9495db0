package model

// FileUploadResponse is returned after storing an upload and eagerly
// extracting its text
type FileUploadResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TaskID        string `json:"task_id"`
	FileName      string `json:"file_name"`
	FileSize      int64  `json:"file_size"`
	FileType      string `json:"file_type"`
	ExtractedText string `json:"extracted_text,omitempty"`
}

// UploadStatusResponse reports an upload's lifecycle status
type UploadStatusResponse struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
