package loader

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// assetValidate checks loaded records against the struct tags on the asset
// model.
var assetValidate = validator.New()

func validateRecord(kind string, id int, v any) error {
	if err := assetValidate.Struct(v); err != nil {
		return fmt.Errorf("invalid %s %d: %w", kind, id, err)
	}
	return nil
}
