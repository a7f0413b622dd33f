package main

import (
	"log"

	"github.com/k0kubun/pp"

	"github.com/nqlparser/nqlparser"
	"github.com/nqlparser/nqlparser/nqltoken"
	"github.com/nqlparser/nqlparser/tokenfilter"
)

func main() {
	simpleScan()
	cursorWalk()
	filteredScan()
}

func simpleScan() {
	str := "SELECT * FROM [nt:base] WHERE depth <= 2"
	scanner, err := nqlparser.NewScanner(str)
	if err != nil {
		log.Fatal(err)
	}

	pp.Println(scanner.Tokens())
}

func cursorWalk() {
	str := "prop = 'value'"
	scanner, err := nqlparser.NewScanner(str)
	if err != nil {
		log.Fatal(err)
	}

	if err := scanner.ExpectSequence([]string{"prop", "=", "'value'"}, true); err != nil {
		log.Fatal(err)
	}

	log.Println("statement matched")
}

func filteredScan() {
	str := "select name , size from [app:item] where size > 1.5E3"
	scanner, err := nqlparser.NewScanner(str)
	if err != nil {
		log.Fatal(err)
	}

	chain := tokenfilter.Chain{
		tokenfilter.DropKinds(nqltoken.Punct),
		tokenfilter.UppercaseIdents(),
	}

	pp.Println(chain.Run(scanner.Tokens()))
}
