package security_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/security"
)

func pdfBytes() []byte {
	return append([]byte("%PDF-1.7"), bytes.Repeat([]byte{0x20}, 64)...)
}

func TestValidateDocument(t *testing.T) {
	t.Run("Valid PDF passes with content type", func(t *testing.T) {
		result := security.ValidateDocument("resume.pdf", pdfBytes())
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
		assert.Equal(t, "application/pdf", result.ContentType)
		assert.Empty(t, result.Error)
	})

	t.Run("Extension check is case-insensitive", func(t *testing.T) {
		result := security.ValidateDocument("Resume.PDF", pdfBytes())
		assert.True(t, result.Valid)
	})

	t.Run("Disallowed extension is rejected", func(t *testing.T) {
		result := security.ValidateDocument("resume.exe", []byte{0x4D, 0x5A, 0x00, 0x00})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("Missing extension is rejected", func(t *testing.T) {
		result := security.ValidateDocument("resume", pdfBytes())
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "no extension")
	})

	t.Run("Oversized file is rejected", func(t *testing.T) {
		big := append([]byte("%PDF"), make([]byte, security.MaxDocumentSize)...)
		result := security.ValidateDocument("resume.pdf", big)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "maximum size")
	})

	t.Run("Content mismatching extension is rejected", func(t *testing.T) {
		// ZIP content under a .pdf name
		result := security.ValidateDocument("resume.pdf", []byte{0x50, 0x4B, 0x03, 0x04, 0x00})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match extension")
	})

	t.Run("DOC and DOCX signatures are accepted", func(t *testing.T) {
		doc := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0x00)
		assert.True(t, security.ValidateDocument("resume.doc", doc).Valid)

		docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
		assert.True(t, security.ValidateDocument("resume.docx", docx).Valid)
	})

	t.Run("Tiny file cannot be verified", func(t *testing.T) {
		result := security.ValidateDocument("resume.pdf", []byte{0x25})
		assert.False(t, result.Valid)
	})
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, security.ValidateFileExtension("resume.pdf"))
	assert.NoError(t, security.ValidateFileExtension("resume.DOCX"))
	assert.Error(t, security.ValidateFileExtension("resume.exe"))
	assert.Error(t, security.ValidateFileExtension("resume"))
}
