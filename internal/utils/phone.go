package utils

// DigitsOnly strips everything but digits from a phone number so WhatsApp
// and tel: links built by the clients always get a dialable value.
func DigitsOnly(s string) string {
    out := make([]byte, 0, len(s))
    for i := 0; i < len(s); i++ {
        if s[i] >= '0' && s[i] <= '9' {
            out = append(out, s[i])
        }
    }
    return string(out)
}
