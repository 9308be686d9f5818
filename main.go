package main

import "eslintfix/cmd"

func main() {
	cmd.Execute()
}
