package main

import "github.com/naka-gawa/linkbio/cmd"

func main() {
	cmd.Execute()
}
