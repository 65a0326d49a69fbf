package blobstore

import "strings"

// rootDir normalizes an object-store root to "" or "dir/".
func rootDir(root string) string {
	root = strings.Trim(root, "/")
	if root == "" {
		return ""
	}
	return root + "/"
}

// JoinKey returns the object key of name below root. Root is treated as a
// directory: "a" and "a/" both yield "a/<name>".
func JoinKey(root, name string) string {
	return rootDir(root) + strings.TrimPrefix(name, "/")
}

// RelativeKey strips root from key. It reports false for keys outside root,
// so a root of "a" never claims "ab.hvec", and for the root itself.
func RelativeKey(key, root string) (string, bool) {
	rel, ok := strings.CutPrefix(key, rootDir(root))
	if !ok || rel == "" {
		return "", false
	}
	return rel, true
}
