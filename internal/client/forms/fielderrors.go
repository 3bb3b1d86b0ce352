package forms

// ValidationDetail is one structured problem reported by the backend on a
// 400 response: which field it concerns and a human-readable message.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrorMap maps a field name to the ordered list of messages reported
// for it. A map is built fresh per validation pass and never merged across
// submission attempts.
type FieldErrorMap map[string][]string

// CollectFieldErrors groups backend validation details by field, preserving
// input order within each field. Entries with an empty field or message are
// skipped silently; a nil slice yields an empty map.
func CollectFieldErrors(details []ValidationDetail) FieldErrorMap {
	m := FieldErrorMap{}
	for _, d := range details {
		if d.Field == "" || d.Message == "" {
			continue
		}
		m[d.Field] = append(m[d.Field], d.Message)
	}
	return m
}

// FirstFieldError returns the first message recorded for field, or ""
// when the field has no messages.
func FirstFieldError(field string, m FieldErrorMap) string {
	list := m[field]
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
