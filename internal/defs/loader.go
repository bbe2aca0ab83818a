package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadVariantDefinitions reads a JSON array of variant definitions and merges
// it into VariantLibrary. Entries with an existing ID replace the built-in one.
func LoadVariantDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read variant definitions file: %w", err)
	}
	return loadVariantDefinitions(file)
}

func loadVariantDefinitions(data []byte) error {
	var variantDefs []VariantDefinition
	if err := json.Unmarshal(data, &variantDefs); err != nil {
		return fmt.Errorf("failed to unmarshal variant definitions: %w", err)
	}

	// Сначала проверяем всё, чтобы не оставить библиотеку наполовину обновлённой
	for _, def := range variantDefs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("invalid variant definition: %w", err)
		}
	}

	for _, def := range variantDefs {
		VariantLibrary[def.ID] = def
	}

	log.Printf("Loaded %d variant definitions", len(variantDefs))
	return nil
}
