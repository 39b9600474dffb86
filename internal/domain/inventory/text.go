package inventory

// Truncate corta s a n runas como máximo (sin partir caracteres multibyte).
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
