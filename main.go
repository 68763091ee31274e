/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package main

import "github.com/gmofishsauce/bcasm/cmd"

func main() {
	cmd.Execute()
}
