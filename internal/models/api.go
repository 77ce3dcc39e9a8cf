package models

type UploadResponse struct {
	Filename       string `json:"filename"`
	CharacterCount int    `json:"character_count"`
	ExtractedText  string `json:"extracted_text"`
}

type AnalyzeResponse struct {
	Status string          `json:"status"`
	Result *AnalysisResult `json:"result"`
}

type SessionResponse struct {
	Phase          string          `json:"phase"`
	ResumeFilename string          `json:"resume_filename,omitempty"`
	HasResume      bool            `json:"has_resume"`
	Result         *AnalysisResult `json:"result,omitempty"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	ErrorKind      string          `json:"error_kind,omitempty"`
}
