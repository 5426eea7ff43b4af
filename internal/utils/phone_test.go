package utils

import "testing"

func TestDigitsOnly(t *testing.T) {
    cases := []struct {
        in, want string
    }{
        {"5511912345678", "5511912345678"},
        {"+55 (11) 91234-5678", "5511912345678"},
        {"tel: 11 9999-8888", "1199998888"},
        {"", ""},
        {"abc", ""},
    }
    for _, tc := range cases {
        if got := DigitsOnly(tc.in); got != tc.want {
            t.Errorf("DigitsOnly(%q) = %q, want %q", tc.in, got, tc.want)
        }
    }
}
