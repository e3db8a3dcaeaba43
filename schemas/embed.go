// Package schemas embeds the JSON Schemas for the documents the analyzer emits and stores.
package schemas

import "embed"

// Files holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	ResumeRecord   = "resume_record.schema.json"
	AnalysisResult = "analysis_result.schema.json"
)
