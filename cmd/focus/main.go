package main

import "focusboard/cmd/focus/root"

func main() {
	root.Execute()
}
