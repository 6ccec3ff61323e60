package security

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxDocumentSize is the upload cap for resumes and cover letters
const MaxDocumentSize = 10 << 20 // 10 MB

// FileValidationResult contains the result of document validation
type FileValidationResult struct {
	Valid       bool   // Whether the file passed all validation checks
	Extension   string // Detected file extension
	ContentType string // Content type to store alongside the document
	Error       string // Error message if validation failed
}

// Magic byte signatures for allowed document types
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Allowed document extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateDocument performs 3-layer validation on an uploaded document:
// 1. Extension whitelist check
// 2. Size cap
// 3. Magic byte verification (content matches extension)
// Validation runs before any storage write so a bad file never leaves the
// request handler.
func ValidateDocument(filename string, data []byte) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[ext] {
		result.Error = "file type not allowed: " + ext + " (accepted: PDF, DOC, DOCX)"
		return result
	}

	if len(data) > MaxDocumentSize {
		result.Error = fmt.Sprintf("file exceeds maximum size of %d MB", MaxDocumentSize>>20)
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	result.Valid = true
	result.ContentType = contentTypes[ext]
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedExtensions[ext] {
		return errors.New("file type not allowed: " + ext)
	}
	return nil
}

// AllowedExtensions returns the accepted extensions for error messages
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}
