package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/BinaryMelodies/msbasic-savefile-re/cli"
	"github.com/BinaryMelodies/msbasic-savefile-re/fileserv"
)

var (
	listen = flag.String("listen", "", "serve decoded listings on this address instead of decoding to stdout")
	output = flag.String("o", "", "write listings to this file instead of stdout")
)

func main() {
	flag.Parse()

	if len(*listen) > 0 {
		rtr := startup()
		log.Printf("listening on %q...", *listen)
		log.Fatal(http.ListenAndServe(*listen, rtr))
	}

	out := os.Stdout
	if len(*output) > 0 {
		fl, err := os.Create(*output)

		if err != nil {
			log.Fatal(err)
		}
		out = fl
	}

	rc := cli.Run(out, os.Stderr, flag.Args())

	if out != os.Stdout {
		out.Close()
	}

	os.Exit(rc)
}

// startup wires the listing routes onto a fresh router
func startup() *mux.Router {
	rtr := mux.NewRouter()
	fileserv.WrapListingSource(rtr)

	return rtr
}
