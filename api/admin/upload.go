package admin

import (
	"dulcemasa_server/lib"
	"fmt"
	"io"
	"net/http"
)

// maxUploadBytes caps a single image upload. Larger assets go through the
// direct-to-storage JSON registration path instead.
const maxUploadBytes = 10 << 20

// readUpload pulls the "file" part out of a multipart body and resolves its
// content type, sniffing the payload when the client sent none.
func readUpload(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, fmt.Errorf("multipart body required: %w", lib.ErrInvalidInput)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("file field is required: %w", lib.ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("file is empty: %w", lib.ErrInvalidInput)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return contentType, data, nil
}
