package strx

// Coalesce returns s if non-empty, otherwise d.
func Coalesce(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// Expand replaces {name} placeholders in tmpl using lookup. Unknown names
// and unterminated braces are copied through untouched.
func Expand(tmpl string, lookup func(name string) (string, bool)) string {
	out := make([]byte, 0, len(tmpl)+32)
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '{' {
			out = append(out, c)
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(tmpl); j++ {
			if tmpl[j] == '}' {
				end = j
				break
			}
			if tmpl[j] == '{' {
				break
			}
		}
		if end < 0 {
			out = append(out, c)
			i++
			continue
		}
		if v, ok := lookup(tmpl[i+1 : end]); ok {
			out = append(out, v...)
		} else {
			out = append(out, tmpl[i:end+1]...)
		}
		i = end + 1
	}
	return string(out)
}
