package typescript

import "strings"

// printDocs renders documentation as a JSDoc block; empty docs render nothing.
func printDocs(docs string) string {
	if docs == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range strings.Split(strings.TrimRight(docs, "\n"), "\n") {
		b.WriteString(" * ")
		b.WriteString(strings.ReplaceAll(line, "*/", "*\\/"))
		b.WriteString("\n")
	}
	b.WriteString("*/")
	return b.String()
}

// withDocs places the doc block, if any, on the line above decl.
func withDocs(docs, decl string) string {
	if d := printDocs(docs); d != "" {
		return d + "\n" + decl
	}
	return decl
}
