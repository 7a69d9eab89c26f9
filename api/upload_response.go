package api

type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
