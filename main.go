package main

import "github.com/jfmyers9/showfinder/cmd"

func main() {
	cmd.Execute()
}
