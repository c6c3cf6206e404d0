package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// OutputManager lays out export files as <base>/<runID>/<file>
type OutputManager struct {
	BaseOutputDir string
}

func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// RunDir creates the directory holding a run's exports
func (om *OutputManager) RunDir(runID string) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("run ID is required")
	}
	dir := filepath.Join(om.BaseOutputDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}
	return dir, nil
}

// FilePath returns where fileName is written for runID. Directory parts
// of fileName are dropped so exports stay inside the run directory.
func (om *OutputManager) FilePath(runID, fileName string) (string, error) {
	dir, err := om.RunDir(runID)
	if err != nil {
		return "", err
	}
	name := filepath.Base(fileName)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid export file name %q", fileName)
	}
	return filepath.Join(dir, name), nil
}

// Format picks the export format from the extension; anything other
// than .json is written as CSV.
func Format(fileName string) string {
	if strings.EqualFold(filepath.Ext(fileName), ".json") {
		return FormatJSON
	}
	return FormatCSV
}
