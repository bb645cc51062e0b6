package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var collections = map[string]string{
	"admin":     "admin_users",
	"responder": "responders",
	"user":      "users",
}

var fields = map[string]string{
	"admin":     "passwordHash",
	"responder": "password",
	"user":      "password",
}

// Generates a bcrypt hash for seeding an account by hand
// Usage: go run scripts/hash_password.go <admin|responder|user> <email> <password>
func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run scripts/hash_password.go <admin|responder|user> <email> <password>")
		os.Exit(1)
	}

	kind := os.Args[1]
	collection, ok := collections[kind]
	if !ok {
		fmt.Printf("unknown account kind %q\n", kind)
		os.Exit(1)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[2]))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(os.Args[3]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bcrypt Hash: %s\n", string(hashedPassword))
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.%s.updateOne(\n", collection)
	fmt.Printf("  {\"email\": \"%s\"},\n", email)
	fmt.Printf("  {$set: {\"%s\": \"%s\", \"active\": true}}\n", fields[kind], string(hashedPassword))
	fmt.Printf(")\n")
}
