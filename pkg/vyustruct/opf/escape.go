package opf

import "strings"

var valueEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, "\n", `\n`, "\r", `\r`)

// escapeValue protects separators inside a cell value.
func escapeValue(v string) string {
	return valueEscaper.Replace(v)
}

// splitValues splits a cell's value list on unescaped commas and unescapes each part.
func splitValues(s string) []string {
	var (
		values []string
		cur    strings.Builder
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\' && i+1 < len(s):
			i++
			switch s[i] {
			case 'n':
				cur.WriteByte('\n')
			case 'r':
				cur.WriteByte('\r')
			default:
				cur.WriteByte(s[i])
			}
		case ch == ',':
			values = append(values, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(values, cur.String())
}
