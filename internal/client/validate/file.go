package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// MaxPromptDocumentSize is the upload limit for prompt documents.
const MaxPromptDocumentSize = 50 << 20

const (
	msgUnsupportedType = "File type not supported. Please upload PDF, DOCX, TXT, or image files."
	msgTooLarge        = "File size too large. Please upload files smaller than 50MB."
)

// FileRules constrains an upload. Empty Allowed accepts any type; zero
// MaxSize accepts any size.
type FileRules struct {
	Allowed []string
	MaxSize int64

	TypeMessage string
	SizeMessage string
}

// PromptDocumentRules applies to documents processed by dynamic prompts.
var PromptDocumentRules = FileRules{
	Allowed: []string{
		"application/pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/jfif",
		"image/bmp",
		"image/tiff",
		"image/tif",
		"image/webp",
		"image/heic",
	},
	MaxSize:     MaxPromptDocumentSize,
	TypeMessage: msgUnsupportedType,
	SizeMessage: msgTooLarge,
}

// FileInfo describes a local file that passed validation.
type FileInfo struct {
	Path string
	Name string
	Size int64
	MIME string
}

// File checks the file at path against rules. The content type is sniffed
// from the file's bytes, not its extension.
func File(path string, rules FileRules) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, &ValidationError{Field: "file", Message: fmt.Sprintf("cannot read %s", path)}
	}
	if st.IsDir() {
		return FileInfo{}, &ValidationError{Field: "file", Message: fmt.Sprintf("%s is a directory", path)}
	}

	if rules.MaxSize > 0 && st.Size() > rules.MaxSize {
		return FileInfo{}, &ValidationError{Field: "file", Message: orDefault(rules.SizeMessage, "File size too large")}
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return FileInfo{}, &ValidationError{Field: "file", Message: fmt.Sprintf("cannot read %s", path)}
	}

	if len(rules.Allowed) > 0 && !allowed(mt, rules.Allowed) {
		return FileInfo{}, &ValidationError{Field: "file", Message: orDefault(rules.TypeMessage, "File type not supported")}
	}

	return FileInfo{
		Path: path,
		Name: filepath.Base(path),
		Size: st.Size(),
		MIME: mt.String(),
	}, nil
}

// Detect sniffs the content type of the file at path without any rules.
func Detect(path string) (FileInfo, error) {
	return File(path, FileRules{})
}

func allowed(mt *mimetype.MIME, list []string) bool {
	for _, a := range list {
		if mt.Is(a) {
			return true
		}
	}
	return false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
