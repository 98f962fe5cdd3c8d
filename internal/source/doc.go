// Package source turns documents on disk into the text lines that field
// resolution works on.
//
// PDF, DOCX and ODT files are read with tabula; images go through OCR,
// which is only available in binaries built with the "ocr" tag. Anything
// else is read as plain text. Page text is cleaned the same way for every
// format before it is split into lines.
package source
