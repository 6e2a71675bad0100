// Package branding holds user-facing product naming.
package branding

// AppName is the product name shown to MCP clients.
const AppName = "Dicebox"
