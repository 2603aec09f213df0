package main

import "github.com/jsphweid/notewalk/cmd"

func main() {
	cmd.Execute()
}
