package service

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

const genericContentType = "application/octet-stream"

// DocumentType returns the media type a document is judged by: the declared
// content type when it is specific, otherwise the type sniffed from the
// content.
func DocumentType(doc *domain.Document) string {
	if doc == nil {
		return ""
	}
	if declared := declaredType(doc.ContentType); declared != "" && declared != genericContentType {
		return declared
	}
	if len(doc.Content) == 0 {
		return ""
	}
	mt := mimetype.Detect(doc.Content)
	for m := mt; m != nil; m = m.Parent() {
		if isDocumentType(m.String()) {
			return m.String()
		}
	}
	return mt.String()
}

// AcceptDocument reports whether the document is a PDF, DOC or DOCX file.
func AcceptDocument(doc *domain.Document) bool {
	return isDocumentType(DocumentType(doc))
}

func declaredType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

func isDocumentType(mediaType string) bool {
	return mimetype.EqualsAny(mediaType, domain.DocumentTypes...)
}
