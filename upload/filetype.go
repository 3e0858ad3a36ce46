package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// extension (without dot) to display label
var fileTypes = map[string]string{
	"pdf": "PDF",

	"doc":  "DOC",
	"docx": "DOCX",

	"ppt":  "PPT",
	"pptx": "PPTX",

	"xls":  "XLS",
	"xlsx": "XLSX",

	"txt": "TXT",
	"rtf": "RTF",

	"jpg":  "JPG",
	"jpeg": "JPEG",
	"png":  "PNG",
	"gif":  "GIF",
	"svg":  "SVG",

	"zip":  "ZIP",
	"rar":  "RAR",
	"csv":  "CSV",
	"json": "JSON",
	"xml":  "XML",
}

// labels which the system fully supports; anything else is accepted with a
// warning, never rejected outright
var supportedTypes = map[string]bool{
	"PDF": true, "DOC": true, "DOCX": true, "PPT": true, "PPTX": true,
	"XLS": true, "XLSX": true, "TXT": true, "RTF": true, "CSV": true,
}

// DetectType maps a filename to a display label by its extension, e.g.
// "report.pdf" to "PDF". Unknown extensions map to their uppercase form,
// missing ones to "UNKNOWN".
func DetectType(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "UNKNOWN"
	}
	if label, ok := fileTypes[ext]; ok {
		return label
	}
	return strings.ToUpper(ext)
}

// Supported reports whether a detected type label is on the whitelist of
// fully supported formats.
func Supported(label string) bool {
	return supportedTypes[label]
}

// TypeDescription returns a human-readable description of a type label.
func TypeDescription(label string) string {
	switch label {
	case "PDF":
		return "PDF document"
	case "DOC":
		return "Word document (legacy)"
	case "DOCX":
		return "Word document"
	case "PPT":
		return "PowerPoint presentation (legacy)"
	case "PPTX":
		return "PowerPoint presentation"
	case "XLS":
		return "Excel spreadsheet (legacy)"
	case "XLSX":
		return "Excel spreadsheet"
	case "TXT":
		return "Plain text file"
	case "RTF":
		return "Rich text file"
	case "CSV":
		return "Comma-separated values"
	}
	return fmt.Sprintf("%s file", label)
}

// EvidenceMaxBytes is the size limit for evidence uploads.
const EvidenceMaxBytes = 10 << 20 // 10 MB

// ValidateEvidence enforces the evidence intake constraints: PDF only, at
// most EvidenceMaxBytes. It runs before the filename reaches the core.
func ValidateEvidence(filename string, size int64) error {
	if DetectType(filename) != "PDF" {
		return fmt.Errorf("evidence must be a PDF file")
	}
	if size > EvidenceMaxBytes {
		return fmt.Errorf("evidence file exceeds %d MB", EvidenceMaxBytes>>20)
	}
	return nil
}
