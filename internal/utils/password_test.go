package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
    hashed, err := HashPassword("admin123")
    if err != nil {
        t.Fatalf("HashPassword: %v", err)
    }
    if hashed == "admin123" {
        t.Fatal("password stored unhashed")
    }
    if !CheckPassword(hashed, "admin123") {
        t.Fatal("correct password rejected")
    }
    if CheckPassword(hashed, "wrong") {
        t.Fatal("wrong password accepted")
    }
}
