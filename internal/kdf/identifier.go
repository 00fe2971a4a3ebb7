package kdf

import (
	"strconv"
	"strings"
)

// param is one key=value pair of an algorithm identifier.
type param struct {
	key   string
	value string
}

func intParam(key string, v int) param {
	return param{key: key, value: strconv.Itoa(v)}
}

// formatIdentifier renders NAME<k1=v1;k2=v2>. Parameters are emitted in the
// order given; callers keep that order fixed since identifiers are persisted.
func formatIdentifier(name string, params ...param) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('<')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	b.WriteByte('>')
	return b.String()
}
