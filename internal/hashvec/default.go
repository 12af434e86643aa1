package hashvec

import (
	_ "embed"
	"fmt"
)

//go:embed artifact/spam_model.json
var defaultArtifact []byte

// LoadDefault builds the bundled frozen spam model. The artifact ships with
// the binary; a decode or validation failure here means a corrupt build and
// must abort initialization.
func LoadDefault() (*Model, error) {
	m, err := ParseModel(defaultArtifact)
	if err != nil {
		return nil, fmt.Errorf("loading bundled spam model: %w", err)
	}
	return m, nil
}
