package i18n

import (
	"sort"
	"strings"
)

// Nest expands dotted keys into nested maps:
//
//	{"header.menu.home": "Home"} -> {"header": {"menu": {"home": "Home"}}}
//
// Keys are applied in sorted order. When a key is both a leaf and a prefix of
// another key ("a" and "a.b"), the nested branch wins.
func Nest(flat map[string]string) map[string]interface{} {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := make(map[string]interface{})
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[part] = child
			}
			node = child
		}

		leaf := parts[len(parts)-1]
		if _, isBranch := node[leaf].(map[string]interface{}); isBranch {
			continue
		}
		node[leaf] = flat[key]
	}
	return root
}
