package main

import (
	"fmt"
	"os"

	"github.com/Stkiag0/dss-group2-projectv1/app/routes/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	// Paste this into ADVISOR_PASSWORD_HASH
	fmt.Println(hash)
}
