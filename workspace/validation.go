package workspace

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Schema names are provided by the user, so they are validated before any
// write. Field display names are free text by design and stay unvalidated.
var defaultValidator = validator.New()

const schemaNameTag = "required,max=255"

func validateSchemaName(name string) error {
	if err := defaultValidator.Var(name, schemaNameTag); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
