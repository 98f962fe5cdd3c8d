package source

import (
	"path/filepath"
	"strings"
)

// Format is the kind of document Load reads.
type Format int

const (
	FormatText Format = iota
	FormatPDF
	FormatDOCX
	FormatODT
	FormatImage
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatODT:
		return "odt"
	case FormatImage:
		return "image"
	default:
		return "unknown"
	}
}

// DetectFormat picks a Format from the file extension. Unknown extensions
// are read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".odt":
		return FormatODT
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return FormatImage
	default:
		return FormatText
	}
}
