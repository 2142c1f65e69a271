// Package schemas embeds the JSON Schemas describing cvgen artifacts.
package schemas

import _ "embed"

// CVBatchFile is the file name of the CV batch schema.
const CVBatchFile = "cv_batch.schema.json"

// CVBatch is the JSON Schema for a batch file: an array of CV records.
//
//go:embed cv_batch.schema.json
var CVBatch string
