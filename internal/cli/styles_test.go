package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatSuccess("saved"), SuccessIcon)

	assert.Contains(t, FormatError("broken"), "broken")
	assert.Contains(t, FormatError("broken"), ErrorIcon)

	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatWarning("careful"), WarningIcon)

	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatInfo("note"), InfoIcon)

	assert.Contains(t, FormatTitle("Categories"), "Categories")
	assert.Contains(t, FormatTitle("Categories"), LeafIcon)
}

func TestRenderBox(t *testing.T) {
	box := RenderBox("Scan Complete", "42 messages scanned")
	assert.Contains(t, box, "Scan Complete")
	assert.Contains(t, box, "42 messages scanned")
}
