package main

import "github.com/jjenkins/resume/cmd"

func main() {
	cmd.Execute()
}
