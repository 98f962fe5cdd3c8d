// Package extract mines candidate (label, value) pairs from document text
// lines.
//
// Three line layouts are recognized, tried in order:
//  1. Inline separator: "Label: value", "Label = value", "Label - value",
//     "Label....: value".
//  2. Wide gap: "Label      value" (column aligned forms).
//  3. Label above value: "Label:" on one line, the value on the next.
package extract
