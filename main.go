package main

import (
	"flag"
	"log"
	"os"

	"Inkwell/internal/ui"
)

func main() {
	endpoint := flag.String("api", os.Getenv("INKWELL_API"), "endpoint that receives published drawings")
	flag.Parse()

	a := ui.NewApp(*endpoint)
	if arg := flag.Arg(0); arg != "" {
		log.Printf("[MAIN] opening argument %q", arg)
		a.OpenArgument(arg)
	}
	a.Run()
}
