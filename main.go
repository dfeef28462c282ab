package main

import "github.com/YuxiangJiangCT/billassistant/cli"

func main() {
	cli.Execute()
}
