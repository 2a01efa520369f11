package model

// Resume holds the stored file reference plus the extracted plain text.
// Text extraction happens outside this service; the upload carries it.
type Resume struct {
	Email    string `json:"email"`
	FileKey  string `json:"file_key"`
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Ctime    int64  `json:"ctime"`
}
