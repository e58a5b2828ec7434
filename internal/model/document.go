package model

// Document is the decoded contents of one log file.
type Document struct {
	Path     string `json:"path"`
	Encoding string `json:"encoding"` // decoder name that produced Text
	Fallback bool   `json:"fallback"` // true when produced by the fallback encoding
	Size     int64  `json:"size"`     // bytes on disk
	Text     string `json:"text"`
}
