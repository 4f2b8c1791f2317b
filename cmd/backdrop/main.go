package main

import "github.com/ThatOtherAndrew/backdrop/cmd"

func main() {
	cmd.Execute()
}
