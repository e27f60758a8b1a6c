// main.go
package main

import "github.com/gewnthar/skysql/cmd"

func main() {
	cmd.Execute()
}
