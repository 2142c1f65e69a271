package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "skills"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"skills": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
	}
}`

const validBatch = `[
  {
    "id": "sample-1760869800.5-0",
    "name": "Lucía García Pérez",
    "role": "Data Scientist",
    "email": "lucía.garcía@email.com",
    "phone": "+34 612 345 678",
    "location": "Gràcia, Barcelona",
    "linkedin": "linkedin.com/in/lucía-garcía",
    "github": "github.com/lucíagarcía",
    "portfolio": "lucíagarcía.dev",
    "summary": "Experienced Data Scientist with 5+ years in Barcelona's tech ecosystem.",
    "skills": ["Python", "Docker", "AWS", "Git", "Scrum"],
    "experience": [
      {"company": "Glovo", "position": "Data Scientist", "duration": "2023 - Present", "location": "Barcelona, Spain", "description": "Leading development initiatives at Glovo."},
      {"company": "Stripe", "position": "Data Scientist", "duration": "2021 - 2023", "location": "Remote", "description": "Developed and maintained applications at Stripe."}
    ],
    "education": [
      {"degree": "Master's in Data Science", "school": "Universitat Pompeu Fabra (UPF)", "year": "2018", "details": "Specialized in software development and modern technologies"}
    ],
    "languages": ["Spanish (Native)", "English (Fluent)", "Catalan (Fluent)"],
    "certifications": ["AWS Certified Developer", "Google Analytics Certified"],
    "companies": ["Glovo", "Kantox"],
    "university": "Universitat de Barcelona (UB)",
    "experienceYears": "5 years",
    "createdAt": "2026-10-19T10:30:00Z",
    "type": "generated",
    "status": "completed",
    "profileImageUrl": "https://randomuser.me/api/portraits/women/12.jpg"
  }
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)
	jsonPath := writeFile(t, "person.json", `{"name": "Ana", "skills": ["Go"]}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)
	jsonPath := writeFile(t, "person.json", `{"name": "Ana"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "skills")
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeFile(t, "person.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeFile(t, "person.schema.json", personSchema)
	jsonPath := writeFile(t, "person.json", `{"name": 7, "skills": []}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSON_InvalidSchema(t *testing.T) {
	schemaPath := writeFile(t, "broken.schema.json", `{"type": 12}`)
	jsonPath := writeFile(t, "empty.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "broken.schema.json")
}

func TestValidateBatch_Valid(t *testing.T) {
	assert.NoError(t, ValidateBatch([]byte(validBatch)))
	assert.NoError(t, ValidateBatch([]byte(`[]`)))
}

func TestValidateBatch_Invalid(t *testing.T) {
	tests := map[string]string{
		"not an array":     `{"id": "x"}`,
		"missing fields":   `[{"id": "x"}]`,
		"bad duration":     `[{"experience": [{"duration": "recently"}]}]`,
		"unknown property": `[{"nickname": "x"}]`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateBatch([]byte(doc))
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateBatch_MalformedJSON(t *testing.T) {
	err := ValidateBatch([]byte("[ not json"))
	require.Error(t, err)
}
