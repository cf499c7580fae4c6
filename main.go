package main

import "todo-tracker.com/todo-tracker/cmd"

func main() {
	cmd.Execute()
}
