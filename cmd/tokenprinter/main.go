package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/k0kubun/pp"

	"github.com/nqlparser/nqlparser"
)

var f = flag.String("f", "stdin", "input statement file (default stdin)")

func main() {
	flag.Parse()

	var src []byte
	if *f == "stdin" {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		src = b
	} else {
		b, err := ioutil.ReadFile(*f)
		if err != nil {
			log.Fatal(err)
		}
		src = b
	}

	scanner, err := nqlparser.NewScanner(string(src))
	if err != nil {
		log.Fatal(err)
	}

	pp.Println(scanner.Tokens())
}
