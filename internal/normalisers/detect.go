package normalisers

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// knownExtensions covers the accepted document types, which the system
// MIME tables often lack.
var knownExtensions = map[string]string{
	".pdf":  domain.MIMETypePDF,
	".txt":  domain.MIMETypePlainText,
	".text": domain.MIMETypePlainText,
	".doc":  domain.MIMETypeMSWord,
	".docx": domain.MIMETypeDOCX,
	".md":   "text/markdown",
	".tex":  "text/x-tex",
	".csv":  "text/csv",
}

// DetectMIMEType guesses a media type from the file name, then from the
// leading content bytes. Parameters such as charset are dropped.
func DetectMIMEType(name string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := knownExtensions[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); ext != "" && t != "" {
		return stripParams(t)
	}
	return stripParams(http.DetectContentType(content))
}

func stripParams(t string) string {
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return t
}
