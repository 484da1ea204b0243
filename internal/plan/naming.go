package plan

// MethodName returns the explicit name if one was resolved, otherwise
// prefix + base + suffix.
func MethodName(rc ResolvedConfig, base string) string {
	if rc.Name != "" {
		return rc.Name
	}

	return rc.Prefix + base + rc.Suffix
}
