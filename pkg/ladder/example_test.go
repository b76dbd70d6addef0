package ladder_test

import (
	"fmt"
	"log"

	"github.com/wagescope/ladder/pkg/ladder"
)

func Example() {
	l, err := ladder.New()
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	res := l.ParseTitle("SR. SOFTWARE ENGINEER II")
	fmt.Println(res.NormalizedTitle)
	fmt.Println(res.Seniority, res.RoleName)
	// Output:
	// Sr. Software Engineer
	// senior Software Engineer
}

func ExampleLadder_ParseTitles() {
	l, err := ladder.New()
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for _, res := range l.ParseTitles([]string{"Registered Nurse", "Zamboni Driver"}) {
		fmt.Println(res.NormalizedTitle, res.Matched())
	}
	// Output:
	// Registered Nurse true
	// Zamboni Driver false
}

func ExampleLadder_ReloadTaxonomy() {
	l, err := ladder.New(ladder.WithRoles([]ladder.Role{
		{ID: 1, Name: "Beekeeper", Aliases: []string{"apiarist"}},
	}))
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	fmt.Println(l.ParseTitle("Apiarist").RoleName)

	if err := l.ReloadTaxonomy([]ladder.Role{
		{ID: 2, Name: "Falconer"},
	}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(l.ParseTitle("Falconer").RoleName)
	// Output:
	// Beekeeper
	// Falconer
}
