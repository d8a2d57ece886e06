package domain

import "fmt"

// UnknownRecordLabel is the last-resort display label when neither identity
// flags nor the raw entity name are usable.
const UnknownRecordLabel = "Unknown Record"

// ComposeLabel builds the display label for a record from its identity
// flags. When both surname and first name are unset the raw entity name is
// used instead; an entity with no usable name renders as UnknownRecordLabel.
func ComposeLabel(rawName, surname, firstName, middleName string) string {
	if surname == "" && firstName == "" {
		if rawName == "" {
			return UnknownRecordLabel
		}
		return rawName
	}

	return fmt.Sprintf("%s - %s %s", surname, firstName, middleName)
}
