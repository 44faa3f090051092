package parsing

import "strings"

// Tokenize splits one record's raw text into its positional fields.
//
// The scan is character by character: every quote character toggles the
// open-quote state, a tab separates fields only while no quote is open, and a
// newline inside an open quote stays part of the current field. Fields are
// whitespace-trimmed and a field fully wrapped in quotes has the wrapping
// pair stripped.
//
// The boolean result reports truncation: a quote was still open when the
// input ended. The partial field accumulated so far is emitted anyway, minus
// its orphan opening quote, so a cut-off sheet still yields usable records.
func Tokenize(raw string) ([]string, bool) {
	var fields []string
	var field strings.Builder

	inQuotes := false
	for _, r := range raw {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == '\t' && !inQuotes:
			fields = append(fields, cleanField(field.String(), false))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	if field.Len() > 0 {
		fields = append(fields, cleanField(field.String(), inQuotes))
	}

	return fields, inQuotes
}

// cleanField trims a raw field and strips a fully wrapping quote pair. For
// the final field of a truncated record the closing quote never arrived, so
// only the orphan opener is dropped.
func cleanField(raw string, truncated bool) string {
	field := strings.TrimSpace(raw)

	if truncated {
		if strings.HasPrefix(field, `"`) {
			field = field[1:]
		}
		return field
	}

	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		field = field[1 : len(field)-1]
	}
	return field
}
