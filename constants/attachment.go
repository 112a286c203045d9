package constants

import "strings"

// PDFContentType is the MIME type of vendor PDF receipts delivered as
// webhook attachments.
const PDFContentType = "application/pdf"

// AllowedAttachmentExtensions holds the attachment extensions the engine
// will attempt to parse.
var AllowedAttachmentExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFAttachment reports whether an attachment looks like a parseable PDF,
// by content type first and file extension as a fallback.
func IsPDFAttachment(contentType, fileName string) bool {
	if strings.EqualFold(strings.TrimSpace(contentType), PDFContentType) {
		return true
	}
	if i := strings.LastIndex(fileName, "."); i >= 0 {
		_, ok := AllowedAttachmentExtensions[NormalizeExt(fileName[i:])]
		return ok
	}
	return false
}
