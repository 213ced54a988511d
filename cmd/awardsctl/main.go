package main

import "awardshub/cmd/awardsctl/command"

func main() {
	command.Execute()
}
