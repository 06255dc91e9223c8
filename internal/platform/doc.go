package platform

// Package platform contains filesystem glue shared by the services:
// attachment-name sanitization, locating extractor output inside a download
// directory, and best-effort directory cleanup.
