package content

// Slice is the display content for one (section, locale) pair: string keys to
// strings, nested records or sequences of records, exactly as the CMS returns
// them.
type Slice map[string]any

// Clone returns a shallow copy. Nested values are shared; handlers treat
// slices as read-only.
func (s Slice) Clone() Slice {
	out := make(Slice, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// merge lays response keys over the defaults. Only keys present in the
// response overwrite; nested arrays and records are taken verbatim, never
// merged per item. Keys absent from the response keep their default.
func merge(defaults, data Slice) Slice {
	out := defaults.Clone()
	for k, v := range data {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
