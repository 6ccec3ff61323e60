// Helper for seeding an admin account: prints the bcrypt hash to insert into
// the users table.
//
//	go run scripts/genhash.go 'TheAdminPassword1'
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/genhash.go <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Hash: %s\n", string(hash))
	fmt.Println("Seed with:")
	fmt.Printf("  INSERT INTO users (name, email, password_hash, role) VALUES ('Admin', 'admin@example.com', '%s', 'admin');\n", string(hash))
}
