// redact маскирует персональные данные перед записью в лог.
package redact

import "strings"

// Email оставляет первые две руны локальной части и домен целиком.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := []rune(parts[0]), parts[1]
	if len(local) > 2 {
		return string(local[:2]) + "***@" + domain
	}

	return "***@" + domain
}

// Secret оставляет от значения только последние 4 символа.
// Короткие значения скрываются полностью.
func Secret(s string) string {
	if len(s) <= 8 {
		return Token()
	}

	return "***" + s[len(s)-4:]
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
