/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/jason89923/servoctl/cmd"

func main() {
	cmd.Execute()
}
