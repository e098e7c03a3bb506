package validator_test

import (
	"testing"

	"countervalidator/internal/validator"

	"github.com/stretchr/testify/require"
)

func TestCheckURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "https", in: "https://sushi.example.com/api/", ok: true},
		{name: "mixed case with default port", in: "HTTPS://Sushi.Example.COM:443/api/", ok: true},
		{name: "query and fragment", in: "https://example.com/?b=2&a=1#frag", ok: true},
		{name: "ipv6 with port", in: "http://[2001:db8::1]:8080/a", ok: true},
		{name: "ftp", in: "ftp://example.com/", ok: true},
		{name: "mailto", in: "mailto:someone@example.com", ok: false},
		{name: "no host", in: "https:///path", ok: false},
		{name: "relative", in: "example.com/sushi", ok: false},
		{name: "unparsable", in: "http://exa mple.com", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.CheckURL(tc.in)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
