// genhash prints bcrypt hashes for seeding recruiter accounts by hand.
//
//	go run ./scripts/genhash.go <password>...
package main

import (
	"fmt"
	"os"

	"recruitment-portal/pkg/password"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>...")
		os.Exit(2)
	}

	hasher := password.NewHasher(password.DefaultCost)
	for _, pass := range os.Args[1:] {
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Hash: %s\n", hash)
	}
}
