package render

import (
	"strings"

	"resume-builder/internal/shared/util"
)

const (
	// DocumentContentType is the media type offered for downloaded documents.
	DocumentContentType = "text/html;charset=utf-8"

	defaultFileBase = "resume"
	fileExtension   = ".html"
)

// FileName returns the download name for a résumé owner, falling back to
// "resume.html" when the name is blank or cannot be used as a file name.
func FileName(name string) string {
	base, err := util.SanitizeFileName(name)
	if err != nil {
		base = defaultFileBase
	}
	if strings.HasPrefix(base, ".") {
		base = defaultFileBase
	}
	return base + fileExtension
}
