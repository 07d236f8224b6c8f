package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ASCII_local_gt_2", in: "foobar@example.com", want: "fo***@example.com"},
		{name: "ASCII_local_len_1", in: "a@ex.com", want: "***@ex.com"},
		{name: "ASCII_local_len_2", in: "ab@ex.com", want: "***@ex.com"},
		{name: "invalid_no_at", in: "no-at-here", want: "***"},
		{name: "invalid_multiple_at", in: "a@b@c", want: "***"},
		{name: "preserve_domain_case", in: "abc.def+tag@EXAMPLE.org", want: "ab***@EXAMPLE.org"},
		{name: "empty_string", in: "", want: "***"},
		{name: "unicode_local_gt_2_runes", in: "юзер@пример.рф", want: "юз***@пример.рф"},
		{name: "unicode_local_len_2_runes", in: "юз@домен", want: "***@домен"},
		{name: "empty_local", in: "@domain", want: "***@domain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestSecret(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Secret(""))
	require.Equal(t, "[REDACTED_TOKEN]", Secret("12345678"))
	require.Equal(t, "***6789", Secret("0123456789"))
}

func TestLiterals_TokenAndPassword(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[REDACTED_TOKEN]", Token())
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
