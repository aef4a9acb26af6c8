package model

// Clone returns a deep copy of the field. Slices, maps and the attachment
// configuration are copied so mutating the clone never reaches the original.
// Callback fields are shared; they are values, not state.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	out := *f
	out.Rules = cloneStrings(f.Rules)
	out.CreationRules = cloneStrings(f.CreationRules)
	out.UpdateRules = cloneStrings(f.UpdateRules)
	if f.Attachments != nil {
		attachments := *f.Attachments
		out.Attachments = &attachments
	}
	if f.Metadata != nil {
		out.Metadata = make(map[string]string, len(f.Metadata))
		for k, v := range f.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
