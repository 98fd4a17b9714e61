package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuiteFromJson(t *testing.T) {
	// Arrange
	content := `{
		"cases": [
			{"variables": 10, "clauses": 30, "instances": 5},
			{"variables": 8, "clauses": 34, "width": 3, "instances": 2}
		]
	}`
	file := filepath.Join(t.TempDir(), "suite.json")
	assert.NoError(t, os.WriteFile(file, []byte(content), 0666))

	// Act
	suite, err := SuiteFromJson(file)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, Suite{Cases: []Case{
		{Variables: 10, Clauses: 30, Instances: 5},
		{Variables: 8, Clauses: 34, Width: 3, Instances: 2},
	}}, suite)
}

func TestSuiteFromJsonRejectsEmptySuite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "suite.json")
	assert.NoError(t, os.WriteFile(file, []byte(`{"cases": []}`), 0666))

	_, err := SuiteFromJson(file)
	assert.Error(t, err)
}

func TestSuiteFromJsonRejectsBadDimensions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "suite.json")
	assert.NoError(t, os.WriteFile(file, []byte(`{"cases": [{"variables": 0, "clauses": 5, "instances": 1}]}`), 0666))

	_, err := SuiteFromJson(file)
	assert.Error(t, err)
}

func TestSuiteFromJsonMissingFile(t *testing.T) {
	_, err := SuiteFromJson(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDefaultSuiteIsValid(t *testing.T) {
	assert.NoError(t, Default().validate())
}
