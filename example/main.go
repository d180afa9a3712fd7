package main

import (
	"fmt"

	unphrase "github.com/gpuente/seed-unphrase-sub000"
)

func main() {
	// Conceal a phrase behind a numeric key
	concealed, err := unphrase.Conceal(unphrase.ConcealInput{
		Phrase:    "legal winner thank yellow",
		CipherKey: "137643",
		Salt:      "garden",
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Concealed value:\n%s\n\n", concealed.Value())

	// Reveal it again with the same key and salt
	revealed, err := unphrase.Reveal(unphrase.RevealInput{
		Value:     concealed.Value(),
		CipherKey: "137643",
		Salt:      "garden",
	})
	if err != nil {
		fmt.Printf("Error revealing: %v\n", err)
		return
	}

	fmt.Printf("Successfully revealed the phrase!\n")
	fmt.Printf("Phrase: %s\n", revealed.Phrase())
	fmt.Printf("Words:  %d\n", len(revealed.Words))
}
