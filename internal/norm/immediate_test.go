package norm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "register untouched", in: "x0,", want: "x0,"},
		{name: "memory operand untouched", in: "[x1,", want: "[x1,"},
		{name: "hex", in: "#0x10", want: "#0x10"},
		{name: "hex leading zeros", in: "#0x0010,", want: "#0x10,"},
		{name: "hex 64-bit", in: "#0xffff000000000000", want: "#0xffff000000000000"},
		{name: "decimal", in: "#16", want: "#0x10"},
		{name: "decimal with comma", in: "#255,", want: "#0xff,"},
		{name: "decimal zero", in: "#0", want: "#0x0"},
		{name: "decimal 64-bit", in: "#4294967296", want: "#0x100000000"},
		{name: "negative decimal", in: "#-1,", want: "#0xffffffff,"},
		{name: "negative decimal pre-index", in: "#-8]!", want: "#0xfffffff8]!"},
		{name: "negative decimal 64-bit", in: "#-4294967296", want: "#0xffffffff00000000"},
		{name: "negative hex", in: "#-0x1,", want: "#0xffffffff,"},
		{name: "negative hex bracket", in: "#-0x10]", want: "#0xfffffff0]"},
		{name: "negative zero", in: "#-0", want: "#0x0"},
		{name: "fractional float", in: "#1.5", want: "#1.5"},
		{name: "fractional negative float", in: "#-0.125,", want: "#-0.125,"},
		{name: "whole float", in: "#2.0", want: "#0x2"},
		{name: "whole negative float", in: "#-2.0)", want: "#0xfffffffe)"},
		{name: "exponent float", in: "#1.0e+2", want: "#0x64"},
		{name: "exponent float saturates", in: "#1.0e+10", want: "#0x7fffffff"},
		{name: "small exponent float", in: "#1.0e-1", want: "#0.1"},
		{name: "broken float", in: "#1.2.3", want: "#1.2.3"},
		{name: "not a number", in: "#abc", want: "#abc"},
		{name: "bad hex digits", in: "#0xzz,", want: "#0xzz,"},
		{name: "empty body", in: "#", want: "#"},
		{name: "empty body with suffix", in: "#,", want: "#,"},
		{name: "too wide", in: "#0x1ffffffffffffffff", want: "#0x1ffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TryHex(tt.in))
		})
	}
}

func TestTryHexIdempotent(t *testing.T) {
	inputs := []string{"#0x0", "#0x10,", "#0xffffffff]", "#0xfffffff8]!", "#0xffffffff00000000)", "#1.5,"}
	for _, in := range inputs {
		once := TryHex(in)
		assert.Equal(t, once, TryHex(once), "input %q", in)
		assert.Equal(t, in, once, "input %q is already canonical", in)
	}
}

func TestTryHexKeepsSuffix(t *testing.T) {
	bodies := []string{"#12", "#0xc", "#-12", "#-0xc", "#2.5", "#3.0"}
	for _, suffix := range immSuffixes {
		for _, body := range bodies {
			got := TryHex(body + suffix)
			assert.Truef(t, strings.HasSuffix(got, suffix), "TryHex(%q) = %q lost suffix %q", body+suffix, got, suffix)
		}
	}
}

func TestTryHexNegativePathsAgree(t *testing.T) {
	for _, pair := range [][2]string{{"#-1,", "#-0x1,"}, {"#-16]", "#-0x10]"}, {"#-4096", "#-0x1000"}} {
		assert.Equal(t, TryHex(pair[0]), TryHex(pair[1]))
	}
}
