package main

import "github.com/VivekYadav7272/leetcode-runner-cli/cmd"

func main() {
	cmd.Execute()
}
