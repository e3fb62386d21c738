package services

import (
	"fmt"
	"path/filepath"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/filex"
)

// readUpload loads path for upload with its sniffed content type.
func readUpload(path string, rules validate.FileRules) (client.FilePart, error) {
	info, err := validate.File(path, rules)
	if err != nil {
		return client.FilePart{}, err
	}
	part, err := client.ReadFilePart("file", info.Path)
	if err != nil {
		return client.FilePart{}, err
	}
	part.ContentType = info.MIME
	return part, nil
}

// saveBlob writes b into dir, preferring the server-supplied filename.
func saveBlob(dir, fallback string, b client.Blob) (string, error) {
	name := filex.SafeName(b.Filename, "")
	if name == "" {
		name = filex.SafeName(fallback, "download.bin")
	}
	path, err := filex.WriteFile(dir, name, b.Data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", filepath.Base(name), err)
	}
	return path, nil
}
