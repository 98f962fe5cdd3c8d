// Package tool exposes field resolution as MCP tools.
package tool
