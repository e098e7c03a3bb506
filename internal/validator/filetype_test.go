package validator_test

import (
	"strings"
	"testing"

	"countervalidator/internal/validator"

	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	cases := []struct {
		name string
		head string
		want string
	}{
		{"json", `{"Report_Header": {"Report_ID": "TR"}, "Report_Items": []}`, validator.FileTypeJSON},
		{"truncated json", strings.Repeat(`{"a": {"b": 1}},`, 5), validator.FileTypeJSON},
		{"csv", "Report_Name,Total\nTitle,1\nOther,2\n", validator.FileTypeCSV},
		{"tsv", "Report_Name\tTotal\nTitle\t1\nOther\t2\n", validator.FileTypeCSV},
		{"plain", "just some words\nand more\n", validator.FileTypeDefault},
		{"binary", "\x00\x01\x02\x03\xff\xfe", validator.FileTypeDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, validator.DetectFileType([]byte(tc.head)))
		})
	}
}
